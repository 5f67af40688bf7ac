package cra

import "strings"

// Delivery Channel: 3 factors, max 13, weight 10%.

// Intermediary keyword buckets. Banks are the most regulated channel;
// licensed salespersons and brokers are medium; any other named intermediary
// is treated as non-regulated.
var (
	bankIntermediaries      = []string{"bank"}
	regulatedIntermediaries = []string{"licensed", "broker", "agent"}
)

// scoreDelivery classifies how the client was identified and through which
// channel the business was introduced. A named agent implies a face-to-face
// sale; no agent text at all implies non-face-to-face. The walk-in factor is
// not applicable to intermediated life proposals and scores 0 (its range is
// 0-3, the one factor that may legitimately be zero).
func scoreDelivery(mapped string) DimensionResult {
	factors := make(map[string]int)

	agent := extractField(mapped, agentPatterns)
	if agent != "" {
		factors["identification"] = 1 // agent signed, face to face
	} else {
		factors["identification"] = 5 // non face-to-face
	}

	factors["walkIn"] = 0

	intermediary := strings.ToLower(agent)
	switch {
	case containsAny(intermediary, bankIntermediaries...):
		factors["intermediary"] = 1
	case containsAny(intermediary, regulatedIntermediaries...):
		factors["intermediary"] = 3
	case intermediary != "":
		factors["intermediary"] = 5 // non-regulated
	default:
		factors["intermediary"] = 3
	}

	return DimensionResult{Score: sumFactors(factors), Factors: factors, Max: 13}
}
