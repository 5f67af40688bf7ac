package cra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMapped = `Occupation:** Teacher
Salary Range:** Above 30,000
Plan Proposed:** NIC Term Assurance
Total Monthly Premium:** MUR 12,000
Frequency of Premium Payment:** Monthly
First Payment Method:** Standing Order
Beneficiary:** Spouse
Nationality:** Mauritian
Residence:** Quatre Bornes, Mauritius
Agent Name:** Licensed Salesperson P. Bhugun`

func TestCalculate_ScoreIsSumOfFactors(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	for name, d := range map[string]DimensionResult{
		"nature_scale": res.NatureScale,
		"products":     res.Products,
		"clients":      res.Clients,
		"geography":    res.Geography,
		"delivery":     res.Delivery,
	} {
		assert.Equal(t, sumFactors(d.Factors), d.Score, name)
		assert.Greater(t, d.Score, 0, name)
		assert.LessOrEqual(t, d.Score, d.Max, name)
	}

	wantTotal := res.NatureScale.Score + res.Products.Score + res.Clients.Score +
		res.Geography.Score + res.Delivery.Score
	assert.Equal(t, wantTotal, res.TotalScore)
}

func TestCalculate_WeightedFormula(t *testing.T) {
	res, err := Calculate(sampleMapped, nil)
	require.NoError(t, err)

	want := float64(res.NatureScale.Score)/35*0.30 +
		float64(res.Products.Score)/25*0.10 +
		float64(res.Clients.Score)/30*0.35 +
		float64(res.Geography.Score)/10*0.15 +
		float64(res.Delivery.Score)/13*0.10
	assert.Equal(t, round2(want), res.WeightedScore)

	// Weights sum to exactly 1.0.
	assert.Equal(t, 1.0,
		weightNatureScale+weightProducts+weightClients+weightGeography+weightDelivery)
}

func TestRiskLevelFor_ThresholdLadder(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0.21, RiskL1},
		{0.29, RiskL1},
		{0.30, RiskL2}, // inclusive lower bound
		{0.39, RiskL2},
		{0.40, RiskL3},
		{0.50, RiskL4},
		{0.60, RiskL5},
		{0.95, RiskL5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevelFor(tt.score), "score %v", tt.score)
	}
}

func TestRiskLevelFor_Monotonic(t *testing.T) {
	prev := 0
	for s := 0.0; s <= 1.0; s += 0.01 {
		ord := riskLevelFor(s).Ordinal()
		assert.GreaterOrEqual(t, ord, prev, "score %v", s)
		prev = ord
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	mv := &ManualVerification{PEPStatus: "No", ClaimsAmount: floatPtr(50_000)}

	a, err := Calculate(sampleMapped, mv)
	require.NoError(t, err)
	b, err := Calculate(sampleMapped, mv)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, FormatSummary(a, mv), FormatSummary(b, mv))
}

func TestCalculate_EmptyInputFallsToMinimums(t *testing.T) {
	res, err := Calculate("", nil)
	require.NoError(t, err)

	assert.Equal(t, 7, res.NatureScale.Score)
	assert.Equal(t, 5, res.Products.Score)
	// Absent beneficiary scores high, everything else at the floor.
	assert.Equal(t, 10, res.Clients.Score)
	assert.Equal(t, 2, res.Geography.Score)
	// Non-face-to-face with unknown intermediary.
	assert.Equal(t, 8, res.Delivery.Score)

	assert.Equal(t, 32, res.TotalScore)
	assert.Equal(t, 0.29, res.WeightedScore)
	assert.Equal(t, RiskL1, res.RiskLevel)

	report := FormatSummary(res, nil)
	assert.Contains(t, report, checkPEP)
	assert.Contains(t, report, checkClaims)
	assert.Contains(t, report, checkCountry)
}

func TestCalculate_OccupationRaisesComposite(t *testing.T) {
	base := "Salary Range:** Above 30,000\nOccupation:** Teacher"
	teacher, err := Calculate(base, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, teacher.NatureScale.Factors["sourceOfFunds"],
		"salary keyword matched")
	assert.Equal(t, 3, teacher.Clients.Factors["occupation"],
		"teacher is in the medium-risk bucket")

	dealer, err := Calculate("Salary Range:** Above 30,000\nOccupation:** Casino Dealer", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, dealer.Clients.Factors["occupation"])
	assert.Greater(t, dealer.WeightedScore, teacher.WeightedScore)
}

func TestCalculate_PEPWithLargeClaims(t *testing.T) {
	mv := &ManualVerification{PEPStatus: "Yes", ClaimsAmount: floatPtr(150_000)}
	res, err := Calculate("", mv)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Clients.Factors["profile"])
	assert.Equal(t, 5, res.Clients.Factors["claimsPattern"])
}

func TestScoringError_CarriesDegradedClassification(t *testing.T) {
	err := &ScoringError{
		Reason:        "boom",
		WeightedScore: degradedWeightedScore,
		RiskLevel:     degradedRiskLevel,
	}
	assert.Equal(t, 0.21, err.WeightedScore)
	assert.Equal(t, RiskL1, err.RiskLevel)
	assert.Contains(t, err.Error(), "unable to calculate")
}
