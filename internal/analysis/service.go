// Package analysis orchestrates the transcript analysis pipeline: fetch the
// transcript, parse it into dated message groups, classify every message on a
// bounded worker pool, and assemble the final report with ranked keywords.
package analysis

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"analyzer/internal/keyword_extractor"
	"analyzer/internal/models"
	"analyzer/internal/risk_policy"
	"analyzer/internal/transcript_parser"
)

// TranscriptStore fetches raw transcript text by bucket and caller-supplied path.
type TranscriptStore interface {
	FetchTranscript(ctx context.Context, bucket, s3Path string) (string, error)
}

// Classifier is the per-message slice of the classifier gateway.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]float64, error)
}

// Service runs the analysis pipeline.
type Service struct {
	store           TranscriptStore
	classifier      Classifier
	extractor       *keyword_extractor.Extractor
	logger          *zap.Logger
	classifyTimeout time.Duration
	maxConcurrency  int
}

// NewService creates the pipeline service. classifyTimeout bounds each
// classifier call; maxConcurrency caps simultaneous classifier calls.
func NewService(
	store TranscriptStore,
	classifier Classifier,
	extractor *keyword_extractor.Extractor,
	logger *zap.Logger,
	classifyTimeout time.Duration,
	maxConcurrency int,
) *Service {
	if classifyTimeout <= 0 {
		classifyTimeout = 5 * time.Second
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}
	return &Service{
		store:           store,
		classifier:      classifier,
		extractor:       extractor,
		logger:          logger,
		classifyTimeout: classifyTimeout,
		maxConcurrency:  maxConcurrency,
	}
}

// Analyze fetches the transcript and runs the full pipeline on it.
func (s *Service) Analyze(ctx context.Context, bucket, s3Path string) (*models.AnalysisResponse, error) {
	content, err := s.store.FetchTranscript(ctx, bucket, s3Path)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeContent(ctx, content)
}

// messageRecord is one transcript message with its assigned id and cleaned text.
type messageRecord struct {
	id      int
	date    string
	message string
}

// AnalyzeContent runs parsing, classification and report assembly on already
// fetched transcript text. A transcript that yields no messages produces an
// empty report, not an error.
func (s *Service) AnalyzeContent(ctx context.Context, content string) (*models.AnalysisResponse, error) {
	groups := transcript_parser.Parse(content)

	records := s.collectRecords(groups)
	s.logger.Info("Transcript parsed",
		zap.String("format", transcript_parser.DetectFormat(content).String()),
		zap.Int("dates", len(groups)),
		zap.Int("messages", len(records)))

	assessments, err := s.classifyAll(ctx, records)
	if err != nil {
		return nil, err
	}

	messages := make([]models.MessageAnalysis, 0, len(records))
	combined := make([]string, 0, len(records))
	for i, rec := range records {
		messages = append(messages, models.MessageAnalysis{
			ID:      rec.id,
			Date:    rec.date,
			Message: rec.message,
			Risks:   riskRecords(assessments[i]),
		})
		combined = append(combined, rec.message)
	}

	keywords := make([]models.KeywordAnalysis, 0, 5)
	if len(combined) > 0 {
		extracted, err := s.extractor.Extract(ctx, strings.Join(combined, " "))
		if err != nil {
			// Keyword failure degrades the report, never the request.
			s.logger.Error("Keyword extraction failed, returning empty keyword list", zap.Error(err))
		} else {
			for _, kw := range extracted {
				keywords = append(keywords, models.KeywordAnalysis{
					Keyword: kw.Keyword,
					Count:   kw.Count,
					Risk:    kw.Risk.String(),
				})
			}
		}
	}

	return &models.AnalysisResponse{Messages: messages, Keywords: keywords}, nil
}

// collectRecords flattens the date groups into id-assigned message records.
// Ids start at 1 and increase across the whole transcript regardless of date.
// Date labels are cleaned of separator residue, and a message body is
// re-cleaned past its first ']' because some bodies legitimately begin with a
// second bracketed segment the parser's grammar did not consume.
func (s *Service) collectRecords(groups []transcript_parser.DateGroup) []messageRecord {
	var records []messageRecord
	id := 1
	for _, group := range groups {
		date := strings.TrimSpace(strings.ReplaceAll(group.Date, "---------------", ""))
		for _, message := range group.Messages {
			if i := strings.Index(message, "]"); i >= 0 {
				message = strings.TrimSpace(message[i+1:])
			}
			records = append(records, messageRecord{id: id, date: date, message: message})
			id++
		}
	}
	return records
}

// classifyAll classifies every record on a bounded pool. Results are written
// into index-addressed slots so report order matches transcript order no
// matter which calls finish first. A failed or timed-out call yields the
// fallback assessment for that message only.
func (s *Service) classifyAll(ctx context.Context, records []messageRecord) ([]models.RiskAssessment, error) {
	assessments := make([]models.RiskAssessment, len(records))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrency)
	for i := range records {
		i := i
		eg.Go(func() error {
			assessments[i] = s.classifyMessage(egCtx, records[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (s *Service) classifyMessage(ctx context.Context, rec messageRecord) models.RiskAssessment {
	callCtx, cancel := context.WithTimeout(ctx, s.classifyTimeout)
	defer cancel()

	probs, err := s.classifier.Classify(callCtx, rec.message)
	if err != nil {
		s.logger.Warn("Classification failed, falling back to NORMAL",
			zap.Int("message_id", rec.id), zap.Error(err))
		return models.FallbackAssessment()
	}
	return risk_policy.Decide(probs)
}

// riskRecords expands an assessment into the per-type records of the report.
// A NORMAL type always carries the NORMAL level; every other type carries the
// message's overall level.
func riskRecords(assessment models.RiskAssessment) []models.MessageRisk {
	risks := make([]models.MessageRisk, 0, len(assessment.RiskTypes))
	for _, riskType := range assessment.RiskTypes {
		level := assessment.Level
		if riskType == models.RiskTypeNormal {
			level = models.RiskLevelNormal
		}
		risks = append(risks, models.MessageRisk{
			Type:  riskType.String(),
			Level: level.String(),
		})
	}
	return risks
}
