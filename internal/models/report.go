package models

import "errors"

var (
	// ErrObjectNotFound indicates the transcript object does not exist in the bucket.
	ErrObjectNotFound = errors.New("transcript object not found")
	// ErrEmptyTranscript indicates the transcript object exists but has no content.
	ErrEmptyTranscript = errors.New("transcript object is empty")
)

// AnalysisRequest is the entry contract of the analysis pipeline.
type AnalysisRequest struct {
	S3Path     string `json:"s3_path" binding:"required"`
	BucketName string `json:"bucket_name" binding:"required"`
}

// MessageRisk pairs a detected risk type with the severity assigned to it.
type MessageRisk struct {
	Type  string `json:"type"`
	Level string `json:"level"`
}

// MessageAnalysis is one analyzed transcript message in the report.
type MessageAnalysis struct {
	ID      int           `json:"id"`
	Date    string        `json:"date"`
	Message string        `json:"message"`
	Risks   []MessageRisk `json:"risks"`
}

// KeywordAnalysis is one ranked keyword in the report.
type KeywordAnalysis struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
	Risk    string `json:"risk"`
}

// AnalysisResponse is the full analysis report returned to the caller.
type AnalysisResponse struct {
	Messages []MessageAnalysis `json:"messages"`
	Keywords []KeywordAnalysis `json:"keywords"`
}
