// Package cra implements the Customer Risk Assessment scoring engine for
// life-insurance proposals. Five dimensions are scored independently from the
// mapped proposal text, combined into a weighted composite, and classified
// into an ordinal risk level. Every function here is pure: no I/O, no state
// across calls.
package cra

// ManualVerification carries the checks a human reviewer performed outside
// the automated pipeline. PEPStatus is "Yes", "No", or empty when the check
// was not done. ClaimsAmount is nil when the claims history was not looked
// up; a pointer to zero means "looked up, no prior claims". Callers validate
// that a supplied amount is non-negative before scoring.
type ManualVerification struct {
	PEPStatus      string   `json:"pep_status,omitempty"`
	PEPComments    string   `json:"pep_comments,omitempty"`
	ClaimsAmount   *float64 `json:"claims_amount,omitempty"`
	ClaimsComments string   `json:"claims_comments,omitempty"`
}

// ClaimsChecked reports whether the claims-history lookup was performed.
func (mv *ManualVerification) ClaimsChecked() bool {
	return mv != nil && mv.ClaimsAmount != nil
}

// PEPChecked reports whether the PEP check was performed.
func (mv *ManualVerification) PEPChecked() bool {
	return mv != nil && mv.PEPStatus != ""
}

// DimensionResult is the outcome of scoring one CRA dimension. Score is
// always the sum of the factor values, and 0 < Score <= Max.
type DimensionResult struct {
	Score   int            `json:"score"`
	Factors map[string]int `json:"factors"`
	Max     int            `json:"max"`

	// IsMauritian is set only by the geography dimension and suppresses the
	// country-risk manual check in the formatted report.
	IsMauritian bool `json:"is_mauritian,omitempty"`
}

// Breakdown holds each dimension's contribution to the weighted composite,
// rounded to two decimal places.
type Breakdown struct {
	NatureScale float64 `json:"nature_scale"`
	Products    float64 `json:"products"`
	Clients     float64 `json:"clients"`
	Geography   float64 `json:"geography"`
	Delivery    float64 `json:"delivery"`
}

// Result is the aggregate CRA outcome for one proposal. Immutable once
// returned from Calculate.
type Result struct {
	NatureScale DimensionResult `json:"nature_scale"`
	Products    DimensionResult `json:"products"`
	Clients     DimensionResult `json:"clients"`
	Geography   DimensionResult `json:"geography"`
	Delivery    DimensionResult `json:"delivery"`

	TotalScore    int       `json:"total_score"`
	WeightedScore float64   `json:"weighted_score"`
	RiskLevel     RiskLevel `json:"risk_level"`
	Breakdown     Breakdown `json:"breakdown"`
}

// RiskLevel is the ordinal risk classification, L1 (lowest) through L5.
type RiskLevel string

// Risk levels in ascending order of severity.
const (
	RiskL1 RiskLevel = "L1"
	RiskL2 RiskLevel = "L2"
	RiskL3 RiskLevel = "L3"
	RiskL4 RiskLevel = "L4"
	RiskL5 RiskLevel = "L5"
)

// Ordinal returns the level's position in the L1..L5 ordering (1-5), or 0
// for an unknown level.
func (l RiskLevel) Ordinal() int {
	switch l {
	case RiskL1:
		return 1
	case RiskL2:
		return 2
	case RiskL3:
		return 3
	case RiskL4:
		return 4
	case RiskL5:
		return 5
	}
	return 0
}

// Description returns the short human-readable label for the level.
func (l RiskLevel) Description() string {
	switch l {
	case RiskL1:
		return "LOW RISK"
	case RiskL2:
		return "LOW-MEDIUM RISK"
	case RiskL3:
		return "MEDIUM RISK"
	case RiskL4:
		return "MEDIUM-HIGH RISK"
	case RiskL5:
		return "HIGH RISK"
	}
	return "Unknown risk level"
}

// Recommendation returns the recommended handling for the level.
func (l RiskLevel) Recommendation() string {
	switch l {
	case RiskL1:
		return "Standard processing approved"
	case RiskL2:
		return "Enhanced monitoring required"
	case RiskL3:
		return "Additional due diligence required"
	case RiskL4:
		return "Senior approval required"
	case RiskL5:
		return "HALT TRANSACTION & ESCALATE"
	}
	return "Unknown risk level"
}
