// Package keyword_extractor ranks the most salient terms of a transcript by
// the classifier's own attention weights. Raw token frequency is a poor risk
// signal (function words dominate), so tokens are weighted by model-internal
// importance and each surviving keyword is re-classified in isolation to get
// a term-specific severity independent of sentence context.
package keyword_extractor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"analyzer/internal/ml_client"
	"analyzer/internal/models"
	"analyzer/internal/risk_policy"
)

// topKeywords caps the ranked keyword list.
const topKeywords = 5

// subwordMarker is the SentencePiece word-start marker the tokenizer emits.
const subwordMarker = "▁"

// Classifier is the slice of the classifier gateway the extractor needs.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]float64, error)
	TokenImportance(ctx context.Context, text string) ([]ml_client.TokenWeight, error)
}

// Keyword is one ranked keyword with its aggregate importance weight,
// occurrence count and isolated-term risk level.
type Keyword struct {
	Keyword string
	Weight  float64
	Count   int
	Risk    models.RiskLevel
}

// Extractor aggregates token importance into ranked keywords.
type Extractor struct {
	classifier Classifier
	logger     *zap.Logger
}

func NewExtractor(classifier Classifier, logger *zap.Logger) *Extractor {
	return &Extractor{classifier: classifier, logger: logger}
}

// Extract returns at most topKeywords keywords for the combined transcript
// text, ranked by aggregate importance weight descending. Ties keep
// first-appearance order. Keywords whose isolated classification fails are
// annotated NORMAL rather than dropped.
func (e *Extractor) Extract(ctx context.Context, combinedText string) ([]Keyword, error) {
	combinedText = strings.TrimSpace(combinedText)
	if combinedText == "" {
		return nil, nil
	}

	tokenWeights, err := e.classifier.TokenImportance(ctx, combinedText)
	if err != nil {
		return nil, fmt.Errorf("failed to get token importance: %w", err)
	}

	type aggregate struct {
		surface string
		weight  float64
		count   int
	}
	var candidates []*aggregate
	bySurface := make(map[string]*aggregate)

	for _, tw := range tokenWeights {
		if !qualifies(tw.Token) {
			continue
		}
		surface := CleanToken(tw.Token)
		if surface == "" || stopWords[surface] {
			continue
		}
		agg, ok := bySurface[surface]
		if !ok {
			agg = &aggregate{surface: surface}
			bySurface[surface] = agg
			candidates = append(candidates, agg)
		}
		agg.weight += tw.Weight
		agg.count++
	}

	if len(candidates) == 0 {
		e.logger.Warn("No qualifying tokens for keyword extraction")
		return nil, nil
	}

	// Stable sort keeps first-seen order among equal weights.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})
	if len(candidates) > topKeywords {
		candidates = candidates[:topKeywords]
	}

	keywords := make([]Keyword, 0, len(candidates))
	for _, agg := range candidates {
		level := models.RiskLevelNormal
		probs, err := e.classifier.Classify(ctx, agg.surface)
		if err != nil {
			e.logger.Warn("Failed to classify keyword, defaulting to NORMAL",
				zap.String("keyword", agg.surface), zap.Error(err))
		} else {
			level = risk_policy.Decide(probs).Level
		}
		keywords = append(keywords, Keyword{
			Keyword: agg.surface,
			Weight:  agg.weight,
			Count:   agg.count,
			Risk:    level,
		})
	}

	return keywords, nil
}

// qualifies filters out control tokens, subword continuations and tokens too
// short to be meaningful keywords. The length cut applies to the raw token,
// marker included, matching the trained pipeline.
func qualifies(token string) bool {
	if specialTokens[token] {
		return false
	}
	if strings.HasPrefix(token, "##") {
		return false
	}
	if utf8.RuneCountInString(token) <= 2 {
		return false
	}
	return !stopWords[token]
}

// CleanToken strips the subword marker and surrounding whitespace from a
// token, yielding its surface form.
func CleanToken(token string) string {
	return strings.TrimSpace(strings.ReplaceAll(token, subwordMarker, ""))
}
