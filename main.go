package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"analyzer/internal/analysis"
	"analyzer/internal/config"
	"analyzer/internal/keyword_extractor"
	"analyzer/internal/ml_client"
	"analyzer/internal/s3_client"
	"analyzer/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize the transcript store
	storeClient := s3_client.NewClient(cfg, logger)

	// Initialize ML service client
	mlClient := ml_client.NewClient(cfg.MLService.URL)

	// Startup probe is warn-only: the sidecar may still be loading the model.
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if health, err := mlClient.HealthCheck(probeCtx); err != nil {
		logger.Warn("ML service health check failed, continuing", zap.Error(err))
	} else {
		logger.Info("ML service healthy",
			zap.String("status", health.Status),
			zap.Bool("model_loaded", health.ModelLoaded),
			zap.String("device", health.Device))
	}
	probeCancel()

	// Initialize the analysis pipeline
	extractor := keyword_extractor.NewExtractor(mlClient, logger)
	service := analysis.NewService(
		storeClient,
		mlClient,
		extractor,
		logger,
		time.Duration(cfg.MLService.ClassifyTimeoutSeconds)*time.Second,
		cfg.MLService.MaxConcurrency,
	)

	// Initialize and run the server
	srv := server.NewServer(service, logger)
	srv.Run(cfg.Server.Port)
}
