package cra

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const reportBar = "═══════════════════════════════════════════════════════════"

// Outstanding manual-check lines. Each is suppressed once the corresponding
// verification is present (or, for country risk, when the client is Mauritian).
const (
	checkPEP     = "• PEP Status: Verify if client is a Politically Exposed Person"
	checkClaims  = "• Claims History: Check iGAS system for previous claims"
	checkCountry = "• Country Risk: Verify against centralized country risk list"
)

// amountPrinter renders monetary amounts with thousands separators.
var amountPrinter = message.NewPrinter(language.English)

// FormatSummary renders the assessment into the fixed-layout text report
// embedded in the underwriting worksheet. mv may be nil. The output is
// byte-identical for identical inputs.
func FormatSummary(res *Result, mv *ManualVerification) string {
	var b strings.Builder

	b.WriteString("\n" + reportBar + "\n")
	b.WriteString("CRA RISK ASSESSMENT\n")
	b.WriteString(reportBar + "\n\n")

	fmt.Fprintf(&b, "Overall CRA Score: %s (%s - %s)\n\n",
		formatScore(res.WeightedScore), res.RiskLevel, res.RiskLevel.Description())

	b.WriteString("Dimension Breakdown:\n")
	writeDimensionLine(&b, "Nature, Scale & Complexity", res.NatureScale, 30, res.Breakdown.NatureScale, "")
	writeDimensionLine(&b, "Products & Services", res.Products, 10, res.Breakdown.Products, "")
	writeDimensionLine(&b, "Types of Clients", res.Clients, 35, res.Breakdown.Clients, "")

	geoNote := ""
	if res.Geography.IsMauritian {
		geoNote = " ✓ Mauritian (Low Risk - No country verification needed)"
	}
	writeDimensionLine(&b, "Geography", res.Geography, 15, res.Breakdown.Geography, geoNote)
	writeDimensionLine(&b, "Delivery Channel", res.Delivery, 10, res.Breakdown.Delivery, "")

	fmt.Fprintf(&b, "\nTotal Raw Score: %d/%d\n\n", res.TotalScore, maxTotalScore)
	fmt.Fprintf(&b, "Risk Classification: %s - %s\n", res.RiskLevel, res.RiskLevel.Description())
	fmt.Fprintf(&b, "Recommendation: %s\n", res.RiskLevel.Recommendation())

	if mv.PEPChecked() || mv.ClaimsChecked() {
		writeVerificationSection(&b, mv)
	}
	writeOutstandingChecks(&b, res, mv)

	b.WriteString(reportBar + "\n")
	return b.String()
}

// FormatFailureSummary is the short fixed report emitted when scoring failed;
// no per-dimension detail is available or shown.
func FormatFailureSummary() string {
	return "\n" + reportBar + "\n" +
		"CRA RISK ASSESSMENT - ERROR\n" +
		reportBar + "\n" +
		"Unable to calculate CRA score. Manual assessment required.\n" +
		reportBar + "\n"
}

func writeDimensionLine(b *strings.Builder, name string, d DimensionResult, weightPct int, contribution float64, note string) {
	fmt.Fprintf(b, "• %s: %d/%d (%d%% weight) → %s%s\n",
		name, d.Score, d.Max, weightPct, formatScore(contribution), note)
}

func writeVerificationSection(b *strings.Builder, mv *ManualVerification) {
	b.WriteString("\nMANUAL VERIFICATION PROVIDED:\n")
	if mv.PEPStatus != "" {
		fmt.Fprintf(b, "• PEP Status: %s", mv.PEPStatus)
		if mv.PEPComments != "" {
			fmt.Fprintf(b, " (%s)", mv.PEPComments)
		}
		b.WriteString("\n")
	}
	if mv.ClaimsAmount != nil {
		fmt.Fprintf(b, "• Claims History: MUR %s", formatAmount(*mv.ClaimsAmount))
		if mv.ClaimsComments != "" {
			fmt.Fprintf(b, " (%s)", mv.ClaimsComments)
		} else {
			b.WriteString(" (No previous claims)")
		}
		b.WriteString("\n")
	}
}

func writeOutstandingChecks(b *strings.Builder, res *Result, mv *ManualVerification) {
	var checks []string
	if !mv.PEPChecked() {
		checks = append(checks, checkPEP)
	}
	if !mv.ClaimsChecked() {
		checks = append(checks, checkClaims)
	}
	if !res.Geography.IsMauritian {
		checks = append(checks, checkCountry)
	}

	if len(checks) > 0 {
		b.WriteString("\n⚠️ MANUAL VERIFICATION REQUIRED:\n")
		b.WriteString(strings.Join(checks, "\n"))
		b.WriteString("\n")
		return
	}
	b.WriteString("\n✅ ALL MANUAL VERIFICATIONS COMPLETED\n")
	b.WriteString("No additional manual checks required.\n")
}

// formatScore renders a score the way the worksheet expects: shortest exact
// decimal form, no trailing zeros (0.3, not 0.30).
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAmount(v float64) string {
	return amountPrinter.Sprint(number.Decimal(v))
}
