package main

import (
	"log"

	config "smwu-sales-api/configs"
	"smwu-sales-api/pkg/handlers"
	"smwu-sales-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	// The store connection is established once and shared for the process
	// lifetime; an unreachable cluster is fatal here, never per-request.
	storeService, err := services.NewStoreService(
		cfg.ConnectionString(),
		cfg.CouchbaseUser,
		cfg.CouchbasePassword,
		cfg.CouchbaseBucket,
	)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize StoreService: %v", err)
	}

	monitoringService := services.NewMonitoringService()
	salesService := services.NewSalesService(storeService)
	serpAPIService := services.NewSerpAPIService(cfg.SerpAPIKey)
	trendsService := services.NewTrendsService()

	salesHandler := handlers.NewSalesHandler(salesService)
	keywordInsightsHandler := handlers.NewKeywordInsightsHandler(serpAPIService)
	trendsHandler := handlers.NewTrendsHandler(trendsService)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	r := gin.Default()
	r.Use(monitoringService.LoggingMiddleware())
	r.Use(cors.Default())

	r.GET("/health", handlers.HealthCheck)

	sales := r.Group("/api/sales")
	{
		sales.GET("/district/:districtCode", salesHandler.GetDistrictSales)
	}

	insights := r.Group("/api/v1/keyword-insights")
	{
		insights.POST("/analyze", keywordInsightsHandler.AnalyzeKeyword)
	}

	trends := r.Group("/api/trends")
	{
		trends.POST("/timeline", trendsHandler.GetTimeline)
		trends.POST("/regions", trendsHandler.GetRegions)
		trends.POST("/related-topics", trendsHandler.GetRelatedTopics)
		trends.POST("/related-queries", trendsHandler.GetRelatedQueries)
		trends.POST("/keyword-suggestions", trendsHandler.GetKeywordSuggestions)
		trends.POST("/interest-by-property", trendsHandler.GetInterestByProperty)
	}

	monitoring := r.Group("/api/v1/monitoring")
	{
		monitoring.GET("/logs", monitoringHandler.GetLogs)
	}

	log.Printf("Starting SMWU Sales Data API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
