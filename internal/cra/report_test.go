package cra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummary_Layout(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	report := FormatSummary(res, nil)

	assert.Contains(t, report, "CRA RISK ASSESSMENT")
	assert.Contains(t, report, "Dimension Breakdown:")
	assert.Contains(t, report, "• Nature, Scale & Complexity: 7/35 (30% weight)")
	assert.Contains(t, report, "• Products & Services: 5/25 (10% weight)")
	assert.Contains(t, report, "• Types of Clients: 8/30 (35% weight)")
	assert.Contains(t, report, "• Geography: 2/10 (15% weight)")
	assert.Contains(t, report, "• Delivery Channel: 4/13 (10% weight)")
	assert.Contains(t, report, "Total Raw Score: 26/113")
	assert.Contains(t, report, "Risk Classification: L1 - LOW RISK")
	assert.Contains(t, report, "Recommendation: Standard processing approved")
}

func TestFormatSummary_MauritianSuppressesCountryCheck(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)
	require.True(t, res.Geography.IsMauritian)

	report := FormatSummary(res, nil)
	assert.Contains(t, report, "✓ Mauritian (Low Risk - No country verification needed)")
	assert.NotContains(t, report, checkCountry)
	// PEP and claims were not verified, so both checks remain outstanding.
	assert.Contains(t, report, "⚠️ MANUAL VERIFICATION REQUIRED:")
	assert.Contains(t, report, checkPEP)
	assert.Contains(t, report, checkClaims)
}

func TestFormatSummary_EmptyVerificationOmitsProvidedSection(t *testing.T) {
	// A zero-value ManualVerification (no flags given) must read the same as
	// nil: no echo header, both checks outstanding.
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	report := FormatSummary(res, &ManualVerification{})
	assert.NotContains(t, report, "MANUAL VERIFICATION PROVIDED:")
	assert.Contains(t, report, "⚠️ MANUAL VERIFICATION REQUIRED:")
	assert.Contains(t, report, checkPEP)
	assert.Contains(t, report, checkClaims)
	assert.Equal(t, FormatSummary(res, nil), report)
}

func TestFormatSummary_VerificationEcho(t *testing.T) {
	mv := &ManualVerification{
		PEPStatus:      "No",
		PEPComments:    "Checked against internal list",
		ClaimsAmount:   floatPtr(1_234_567),
		ClaimsComments: "Two motor claims",
	}
	res, err := Calculate(sampleMapped, mv)
	require.NoError(t, err)

	report := FormatSummary(res, mv)
	assert.Contains(t, report, "MANUAL VERIFICATION PROVIDED:")
	assert.Contains(t, report, "• PEP Status: No (Checked against internal list)")
	assert.Contains(t, report, "• Claims History: MUR 1,234,567 (Two motor claims)")
	assert.NotContains(t, report, checkPEP)
	assert.NotContains(t, report, checkClaims)
}

func TestFormatSummary_AllVerificationsComplete(t *testing.T) {
	mv := &ManualVerification{PEPStatus: "No", ClaimsAmount: floatPtr(0)}
	res, err := Calculate(sampleMapped, mv)
	require.NoError(t, err)

	report := FormatSummary(res, mv)
	assert.Contains(t, report, "✅ ALL MANUAL VERIFICATIONS COMPLETED")
	assert.NotContains(t, report, "⚠️ MANUAL VERIFICATION REQUIRED:")
	assert.Contains(t, report, "• Claims History: MUR 0 (No previous claims)")
}

func TestFormatSummary_ContributionsAddUp(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	report := FormatSummary(res, nil)
	assert.Contains(t, report, "→ "+formatScore(res.Breakdown.NatureScale))
	assert.Contains(t, report, "Overall CRA Score: "+formatScore(res.WeightedScore))
}

func TestFormatFailureSummary(t *testing.T) {
	report := FormatFailureSummary()
	assert.Contains(t, report, "CRA RISK ASSESSMENT - ERROR")
	assert.Contains(t, report, "Manual assessment required.")
	// No detail sections on failure.
	assert.NotContains(t, report, "Dimension Breakdown:")
}

func TestFormatScore_NoTrailingZeros(t *testing.T) {
	assert.Equal(t, "0.3", formatScore(0.30))
	assert.Equal(t, "0.06", formatScore(0.06))
	assert.Equal(t, "0.29", formatScore(0.29))
}

func TestFormatAmount_GroupsThousands(t *testing.T) {
	assert.Equal(t, "150,000", formatAmount(150_000))
	assert.Equal(t, "0", formatAmount(0))
}

func TestFormatSummary_StableAcrossCalls(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	first := FormatSummary(res, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FormatSummary(res, nil))
	}
	assert.Equal(t, 1, strings.Count(first, "Overall CRA Score:"))
}
