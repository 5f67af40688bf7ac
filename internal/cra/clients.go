package cra

import "strings"

// Types of Clients: 6 factors, max 30, weight 35%.

// Occupation keyword buckets. Cash-intensive or gatekeeper professions are
// high risk; occupations with irregular or hard-to-verify income are medium;
// everything else is low. The buckets are heuristic and deliberately
// incomplete: an unrecognised occupation defaults to low.
var (
	highRiskOccupations   = []string{"casino", "jeweller", "accountant", "lawyer"}
	mediumRiskOccupations = []string{"medical", "teacher", "contractor", "hawker"}
)

// Family relations accepted as low-risk ultimate beneficiaries. Any other
// non-family beneficiary (including none declared) is high risk.
var familyRelations = []string{
	"self", "spouse", "child", "mother", "father", "sister", "brother",
}

// Claims-history breakpoints (MUR): zero means no history, anything up to
// the breakpoint is some history, above it is a significant pattern.
const claimsHistoryBreakpoint = 100_000

// scoreClients classifies the client profile. The profile and claims-pattern
// factors are driven entirely by the reviewer's manual verification; absent
// verification they default to low. Legal structure and restriction-list
// checks assume an individual client with no list hit.
func scoreClients(mapped string, mv *ManualVerification) DimensionResult {
	factors := make(map[string]int)

	// Individual client.
	factors["legalStructure"] = 1

	occupation := strings.ToLower(extractField(mapped, occupationPatterns))
	switch {
	case containsAny(occupation, highRiskOccupations...):
		factors["occupation"] = 5
	case containsAny(occupation, mediumRiskOccupations...):
		factors["occupation"] = 3
	default:
		factors["occupation"] = 1
	}

	beneficiary := strings.ToLower(extractField(mapped, beneficiaryPatterns))
	if containsAny(beneficiary, familyRelations...) {
		factors["beneficiary"] = 1
	} else {
		factors["beneficiary"] = 5
	}

	if mv.PEPChecked() && mv.PEPStatus == "Yes" {
		factors["profile"] = 5
	} else {
		factors["profile"] = 1
	}

	factors["restrictionList"] = 1

	if mv.ClaimsChecked() {
		switch amount := *mv.ClaimsAmount; {
		case amount == 0:
			factors["claimsPattern"] = 1
		case amount <= claimsHistoryBreakpoint:
			factors["claimsPattern"] = 3
		default:
			factors["claimsPattern"] = 5
		}
	} else {
		factors["claimsPattern"] = 1
	}

	return DimensionResult{Score: sumFactors(factors), Factors: factors, Max: 30}
}
