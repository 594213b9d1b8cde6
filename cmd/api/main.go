package main

import (
	"log"
	"os"

	"macro-scenario-risk/internal/api/handlers"
	"macro-scenario-risk/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(logger)
	riskHandler := handlers.NewRiskHandler()
	scenarioHandler := handlers.NewScenarioHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/risk", riskHandler.AnalyzeRisk)
		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	logger.Info("starting macro scenario risk API", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
