package cra

import "strings"

// Nature, Scale & Complexity: 7 factors, max 35, weight 30%.

// Salary-range answers that place the payer in the top declared brackets.
// The form offers four checkboxes; "25,001-30,000" and "Above 30,000" both
// indicate a verifiable salaried income, scored low.
var salariedRangeMarkers = []string{"25,001", "25001", "30,000", "30000"}

// Occupations treated as business income rather than salary.
var businessOccupations = []string{"business", "director"}

// Keywords in the first-payment-method answer indicating a cross-border payment.
var internationalPaymentMarkers = []string{"international", "foreign"}

// Premium breakpoints (MUR) for the payment-channel factor. Monthly premiums
// use tighter bands than one-off payments.
const (
	monthlyPremiumLow  = 25_000
	monthlyPremiumHigh = 50_000
	oneOffPremiumLow   = 100_000
	oneOffPremiumHigh  = 500_000

	cashPremiumLow  = 50_000
	cashPremiumHigh = 250_000
)

// scoreNatureScale classifies the source-of-funds, payment-channel and
// cash-usage risk of the proposal. Churning and income-ratio have no
// supporting fields in the mapped text and stay at their low defaults.
func scoreNatureScale(mapped string) DimensionResult {
	factors := make(map[string]int)

	occupation := strings.ToLower(extractField(mapped, occupationPatterns))
	salaryRange := extractField(mapped, salaryRangePatterns)

	switch {
	case containsAny(salaryRange, salariedRangeMarkers...):
		factors["sourceOfFunds"] = 1 // declared salary bracket
	case containsAny(occupation, businessOccupations...):
		factors["sourceOfFunds"] = 3 // business income
	default:
		factors["sourceOfFunds"] = 1
	}

	// Policy assumed to be for self.
	factors["payerRelationship"] = 1

	premium := parseAmount(extractField(mapped, premiumPatterns))
	paymentFreq := strings.ToLower(extractField(mapped, paymentFreqPatterns))

	if strings.Contains(paymentFreq, "monthly") {
		factors["bankTransfer"] = tierByAmount(premium, monthlyPremiumLow, monthlyPremiumHigh)
	} else {
		factors["bankTransfer"] = tierByAmount(premium, oneOffPremiumLow, oneOffPremiumHigh)
	}

	paymentMethod := strings.ToLower(extractField(mapped, paymentMethodPatterns))
	if strings.Contains(paymentMethod, "cash") {
		factors["cash"] = tierByAmount(premium, cashPremiumLow, cashPremiumHigh)
	} else {
		factors["cash"] = 1
	}

	if containsAny(paymentMethod, internationalPaymentMarkers...) {
		factors["international"] = 3
	} else {
		factors["international"] = 1
	}

	// None or once in five years.
	factors["churning"] = 1
	// Within 15% of declared income; no income data is available to refine this.
	factors["incomeRatio"] = 1

	return DimensionResult{Score: sumFactors(factors), Factors: factors, Max: 35}
}

// tierByAmount maps an amount to 1/3/5 by two breakpoints: strictly below
// the low breakpoint is 1, up to and including the high breakpoint is 3,
// above it is 5.
func tierByAmount(amount, low, high float64) int {
	switch {
	case amount < low:
		return 1
	case amount <= high:
		return 3
	default:
		return 5
	}
}

func sumFactors(factors map[string]int) int {
	var total int
	for _, v := range factors {
		total += v
	}
	return total
}
