package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aarong11/ai-detect-api/internal/adapter/http/handler"
	"github.com/aarong11/ai-detect-api/internal/adapter/http/middleware"
	"github.com/aarong11/ai-detect-api/internal/domain/service"
	"github.com/aarong11/ai-detect-api/internal/usecase"
)

// Setup creates and configures the Gin router. The classifier is injected by
// the composition root so tests can wire a stub in its place.
func Setup(clf service.Classifier, checker handler.ReadinessChecker, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(checker)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Classification endpoint
	predictUC := usecase.NewPredictUsecase(clf, logger)
	predictHandler := handler.NewPredictHandler(predictUC)
	router.POST("/predict", predictHandler.Predict)

	return router
}
