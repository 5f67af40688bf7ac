package cra

import "strings"

// Geography: 2 factors, max 10, weight 15%.

// Markers identifying a Mauritian client. A Mauritian nationality exempts
// the proposal from the country-risk manual check.
var mauritianMarkers = []string{"mauritius", "mauritian"}

// scoreGeography classifies nationality and residence. No centralized
// country-risk list is consulted: non-Mauritian clients also score low here
// and are instead flagged for the country-risk manual check in the report.
// This is a known functional gap inherited from the assessment procedure,
// not something the engine papers over.
func scoreGeography(mapped string) DimensionResult {
	factors := make(map[string]int)

	nationality := strings.ToLower(extractField(mapped, nationalityPatterns))
	residence := strings.ToLower(extractField(mapped, residencePatterns))

	if containsAny(nationality, mauritianMarkers...) {
		factors["nationality"] = 1 // Mauritius, no manual review needed
	} else {
		factors["nationality"] = 1 // would need a country-risk list to refine
	}

	if strings.Contains(residence, "mauritius") {
		factors["residence"] = 1
	} else {
		factors["residence"] = 1
	}

	return DimensionResult{
		Score:       sumFactors(factors),
		Factors:     factors,
		Max:         10,
		IsMauritian: containsAny(nationality, mauritianMarkers...),
	}
}
