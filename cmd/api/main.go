package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"gbce/internal/config"
	"gbce/internal/handlers"
	"gbce/internal/logger"
	"gbce/internal/middleware"
	"gbce/internal/services"
	"gbce/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize the exchange and seed the demonstration catalog
	exchangeService := services.NewExchangeService(appConfig.ExchangeName)
	exchangeService.LoadInstruments()

	// Initialize handlers
	exchangeHandler := handlers.NewExchangeHandler(exchangeService, appConfig.VWAPWindowMinutes)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "exchange": exchangeService.Name()})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Trade routes
	trades := v1.Group("/trades")
	trades.POST("", exchangeHandler.RecordTrade)

	// Instrument routes
	instruments := v1.Group("/instruments")
	instruments.GET("", exchangeHandler.ListInstruments)
	instruments.GET("/:symbol", exchangeHandler.GetInstrument)
	instruments.GET("/:symbol/trades", exchangeHandler.ListTrades)
	instruments.GET("/:symbol/vwap", exchangeHandler.VolumeWeightedPrice)
	instruments.GET("/:symbol/dividend-yield", exchangeHandler.DividendYield)
	instruments.GET("/:symbol/pe-ratio", exchangeHandler.PERatio)

	// Index route
	v1.GET("/index", exchangeHandler.AllShareIndex)

	log.Infof("Starting %s API server on port %s", exchangeService.Name(), appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
