package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"analyzer/internal/analysis"
	"analyzer/internal/middleware"
	"analyzer/internal/models"
)

type AnalysisHandler interface {
	Analyze(c *gin.Context)
}

type analysisHandler struct {
	service *analysis.Service
	logger  *zap.Logger
}

func NewAnalysisHandler(service *analysis.Service, logger *zap.Logger) AnalysisHandler {
	return &analysisHandler{service: service, logger: logger}
}

// Analyze handles POST /api/analyze
func (h *analysisHandler) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON for analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)
	h.logger.Info("Analysis request received",
		zap.String("request_id", requestID),
		zap.String("bucket", req.BucketName),
		zap.String("path", req.S3Path))

	report, err := h.service.Analyze(c.Request.Context(), req.BucketName, req.S3Path)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrObjectNotFound):
			h.logger.Warn("Transcript not found",
				zap.String("request_id", requestID),
				zap.String("bucket", req.BucketName),
				zap.String("path", req.S3Path))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transcript not found"})
		case errors.Is(err, models.ErrEmptyTranscript):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript is empty"})
		default:
			h.logger.Error("Analysis failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze transcript"})
		}
		return
	}

	h.logger.Info("Analysis completed",
		zap.String("request_id", requestID),
		zap.Int("messages", len(report.Messages)),
		zap.Int("keywords", len(report.Keywords)))
	c.JSON(http.StatusOK, report)
}
