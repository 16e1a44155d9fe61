// Package risk_policy derives a discrete risk assessment from a classifier
// probability vector using fixed thresholds.
package risk_policy

import "analyzer/internal/models"

// Level thresholds are inclusive lower bounds on the maximum probability.
// The multi-label type threshold is exclusive: a category is detected only
// when its probability is strictly greater than it.
const (
	highThreshold   = 0.60
	mediumThreshold = 0.55
	lowThreshold    = 0.53
	typeThreshold   = 0.53
)

// Decide converts a nine-label probability vector into a RiskAssessment.
// It is a pure, total function: short vectors read missing entries as zero,
// and an all-quiet vector yields the NORMAL type set.
func Decide(probs []float64) models.RiskAssessment {
	confidence := probAt(probs, 0)
	dominant := 0
	for i := 1; i < models.NumRiskTypes; i++ {
		if p := probAt(probs, i); p > confidence {
			confidence = p
			dominant = i
		}
	}

	var level models.RiskLevel
	switch {
	case confidence >= highThreshold:
		level = models.RiskLevelHigh
	case confidence >= mediumThreshold:
		level = models.RiskLevelMedium
	case confidence >= lowThreshold:
		level = models.RiskLevelLow
	default:
		level = models.RiskLevelNormal
	}

	// Scan every label except the trailing NORMAL one, in enumeration order.
	var riskTypes []models.RiskType
	for i := 0; i < models.NumRiskTypes-1; i++ {
		if probAt(probs, i) > typeThreshold {
			riskTypes = append(riskTypes, models.RiskTypeByIndex(i))
		}
	}
	if len(riskTypes) == 0 {
		riskTypes = []models.RiskType{models.RiskTypeNormal}
	}

	return models.RiskAssessment{
		Level:        level,
		Confidence:   confidence,
		DominantType: models.RiskTypeByIndex(dominant),
		RiskTypes:    riskTypes,
	}
}

func probAt(probs []float64, i int) float64 {
	if i < 0 || i >= len(probs) {
		return 0
	}
	return probs[i]
}
