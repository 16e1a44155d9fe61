package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"analyzer/internal/analysis"
	"analyzer/internal/handler"
	"analyzer/internal/middleware"
)

type Server struct {
	router  *gin.Engine
	service *analysis.Service
	logger  *zap.Logger
}

func NewServer(service *analysis.Service, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))

	s := &Server{
		router:  router,
		service: service,
		logger:  logger,
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	analysisHandler := handler.NewAnalysisHandler(s.service, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := s.router.Group("/api")
	api.POST("/analyze", analysisHandler.Analyze)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
