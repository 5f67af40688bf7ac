package cra

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Dimension weights. They sum to exactly 1.0.
const (
	weightNatureScale = 0.30
	weightProducts    = 0.10
	weightClients     = 0.35
	weightGeography   = 0.15
	weightDelivery    = 0.10
)

// maxTotalScore is the sum of the five dimension maxima (35+25+30+10+13).
const maxTotalScore = 113

// Degraded values reported when scoring fails: the lowest tier's floor.
const (
	degradedWeightedScore = 0.21
	degradedRiskLevel     = RiskL1
)

// ScoringError is returned when a scorer fails unexpectedly. It carries the
// degraded classification the assessment procedure prescribes for a failed
// computation, so a caller that must still produce a worksheet can use
// WeightedScore and RiskLevel — but only after explicitly branching on the
// error, which keeps a computation failure distinguishable from a genuine
// low-risk result.
type ScoringError struct {
	Reason        string
	WeightedScore float64
	RiskLevel     RiskLevel
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("cra: unable to calculate score: %s", e.Reason)
}

// Calculate runs the five dimension scorers over the mapped proposal text,
// sums the raw scores, computes the weighted composite and classifies it.
// mv may be nil when no manual verification was performed. The result is
// deterministic: identical inputs produce identical results.
//
// An unexpected panic inside a scorer is converted into a *ScoringError
// rather than propagated; no partial Result is returned in that case.
func Calculate(mapped string, mv *ManualVerification) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("cra: scorer panic",
				zap.Any("panic", r),
			)
			res = nil
			err = &ScoringError{
				Reason:        fmt.Sprint(r),
				WeightedScore: degradedWeightedScore,
				RiskLevel:     degradedRiskLevel,
			}
		}
	}()

	natureScale := scoreNatureScale(mapped)
	products := scoreProducts(mapped)
	clients := scoreClients(mapped, mv)
	geography := scoreGeography(mapped)
	delivery := scoreDelivery(mapped)

	totalScore := natureScale.Score + products.Score + clients.Score +
		geography.Score + delivery.Score

	weighted := contribution(natureScale, weightNatureScale) +
		contribution(products, weightProducts) +
		contribution(clients, weightClients) +
		contribution(geography, weightGeography) +
		contribution(delivery, weightDelivery)

	return &Result{
		NatureScale:   natureScale,
		Products:      products,
		Clients:       clients,
		Geography:     geography,
		Delivery:      delivery,
		TotalScore:    totalScore,
		WeightedScore: round2(weighted),
		RiskLevel:     riskLevelFor(weighted),
		Breakdown: Breakdown{
			NatureScale: round2(contribution(natureScale, weightNatureScale)),
			Products:    round2(contribution(products, weightProducts)),
			Clients:     round2(contribution(clients, weightClients)),
			Geography:   round2(contribution(geography, weightGeography)),
			Delivery:    round2(contribution(delivery, weightDelivery)),
		},
	}, nil
}

// riskLevelFor maps a weighted score to its risk tier. The ladder is
// evaluated top-down with inclusive lower bounds: a score exactly at a
// threshold resolves to the higher tier.
func riskLevelFor(weighted float64) RiskLevel {
	switch {
	case weighted >= 0.60:
		return RiskL5
	case weighted >= 0.50:
		return RiskL4
	case weighted >= 0.40:
		return RiskL3
	case weighted >= 0.30:
		return RiskL2
	default:
		return RiskL1
	}
}

func contribution(d DimensionResult, weight float64) float64 {
	return float64(d.Score) / float64(d.Max) * weight
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
