package risk_policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analyzer/internal/models"
)

// vectorWithMax builds a nine-label vector whose maximum sits at the given
// index, with every other component low.
func vectorWithMax(index int, max float64) []float64 {
	probs := make([]float64, models.NumRiskTypes)
	for i := range probs {
		probs[i] = 0.1
	}
	probs[index] = max
	return probs
}

func TestDecideLevelThresholds(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want models.RiskLevel
	}{
		{"at high threshold", 0.60, models.RiskLevelHigh},
		{"just below high", 0.599999, models.RiskLevelMedium},
		{"at medium threshold", 0.55, models.RiskLevelMedium},
		{"just below medium", 0.549999, models.RiskLevelLow},
		{"at low threshold", 0.53, models.RiskLevelLow},
		{"just below low", 0.529999, models.RiskLevelNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := Decide(vectorWithMax(int(models.RiskTypeThreat), tt.max))
			assert.Equal(t, tt.want, assessment.Level)
			assert.Equal(t, tt.max, assessment.Confidence)
			assert.Equal(t, models.RiskTypeThreat, assessment.DominantType)
		})
	}
}

func TestDecideMultiLabelTypes(t *testing.T) {
	probs := make([]float64, models.NumRiskTypes)
	probs[models.RiskTypeCoercion] = 0.6
	probs[models.RiskTypeInsult] = 0.54
	probs[models.RiskTypeNormal] = 0.3

	assessment := Decide(probs)
	assert.Equal(t, models.RiskLevelHigh, assessment.Level)
	// Detected types come in enumeration order, not probability order.
	assert.Equal(t, []models.RiskType{models.RiskTypeCoercion, models.RiskTypeInsult}, assessment.RiskTypes)
	assert.Equal(t, models.RiskTypeCoercion, assessment.DominantType)
	assert.Equal(t, 0.6, assessment.Confidence)
}

func TestDecideTypeThresholdIsExclusive(t *testing.T) {
	// Exactly 0.53 yields level LOW but is not enough for the type scan.
	assessment := Decide(vectorWithMax(int(models.RiskTypeThreat), 0.53))
	assert.Equal(t, models.RiskLevelLow, assessment.Level)
	assert.Equal(t, []models.RiskType{models.RiskTypeNormal}, assessment.RiskTypes)
}

func TestDecideAllBelowThreshold(t *testing.T) {
	probs := make([]float64, models.NumRiskTypes)
	for i := range probs {
		probs[i] = 0.2
	}

	assessment := Decide(probs)
	assert.Equal(t, []models.RiskType{models.RiskTypeNormal}, assessment.RiskTypes)
	assert.Equal(t, models.RiskLevelNormal, assessment.Level)
}

func TestDecideNormalDominantWithDetectedType(t *testing.T) {
	// NORMAL can carry the single highest probability while another label
	// still exceeds the multi-label threshold; the divergence is intentional.
	probs := make([]float64, models.NumRiskTypes)
	probs[models.RiskTypeRejection] = 0.56
	probs[models.RiskTypeNormal] = 0.9

	assessment := Decide(probs)
	assert.Equal(t, models.RiskTypeNormal, assessment.DominantType)
	assert.Equal(t, []models.RiskType{models.RiskTypeRejection}, assessment.RiskTypes)
	assert.Equal(t, models.RiskLevelHigh, assessment.Level)
	assert.Equal(t, 0.9, assessment.Confidence)
}

func TestDecideNormalLabelExcludedFromTypeScan(t *testing.T) {
	probs := make([]float64, models.NumRiskTypes)
	probs[models.RiskTypeNormal] = 0.99

	assessment := Decide(probs)
	assert.Equal(t, []models.RiskType{models.RiskTypeNormal}, assessment.RiskTypes)
	assert.Equal(t, models.RiskTypeNormal, assessment.DominantType)
}

func TestDecideArgmaxTieBreaksByFirstOccurrence(t *testing.T) {
	probs := make([]float64, models.NumRiskTypes)
	probs[models.RiskTypeStalking] = 0.7
	probs[models.RiskTypeThreat] = 0.7

	assessment := Decide(probs)
	assert.Equal(t, models.RiskTypeStalking, assessment.DominantType)
}

func TestDecideShortVector(t *testing.T) {
	assessment := Decide([]float64{0.8})
	require.NotEmpty(t, assessment.RiskTypes)
	assert.Equal(t, models.RiskLevelHigh, assessment.Level)
	assert.Equal(t, models.RiskTypeSexual, assessment.DominantType)
	assert.Equal(t, []models.RiskType{models.RiskTypeSexual}, assessment.RiskTypes)

	empty := Decide(nil)
	assert.Equal(t, models.RiskLevelNormal, empty.Level)
	assert.Equal(t, []models.RiskType{models.RiskTypeNormal}, empty.RiskTypes)
	assert.Equal(t, 0.0, empty.Confidence)
}
