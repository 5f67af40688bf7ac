package cra

import "strings"

// Products & Services: 5 factors, max 25, weight 10%.

// Plan-name keyword buckets for the life-product factor. Pure protection
// products are low risk; products with a savings or surrender component are
// medium; the investment-heavy Maxi Saver line is high.
var (
	lowRiskPlans    = []string{"term", "decreasing"}
	mediumRiskPlans = []string{"cash back", "endowment", "motor"}
	highRiskPlans   = []string{"maxi saver"}
)

// scoreProducts classifies the proposed plan. The general-insurance,
// pension, lending and group-scheme factors have no supporting fields on the
// proposal form and stay at their not-applicable defaults.
func scoreProducts(mapped string) DimensionResult {
	factors := make(map[string]int)

	plan := strings.ToLower(extractField(mapped, planPatterns))
	switch {
	case containsAny(plan, lowRiskPlans...):
		factors["lifeProduct"] = 1
	case containsAny(plan, mediumRiskPlans...):
		factors["lifeProduct"] = 3
	case containsAny(plan, highRiskPlans...):
		factors["lifeProduct"] = 5
	default:
		factors["lifeProduct"] = 1
	}

	factors["generalProduct"] = 1
	factors["pensionProduct"] = 1
	factors["lendingProduct"] = 1
	factors["groupScheme"] = 1

	return DimensionResult{Score: sumFactors(factors), Factors: factors, Max: 25}
}
