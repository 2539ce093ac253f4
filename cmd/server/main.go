package main

import (
	"net/http"

	"vendor_hub_backend/internal/config"
	"vendor_hub_backend/internal/fixtures"
	"vendor_hub_backend/internal/ledger"
	"vendor_hub_backend/internal/router"
	"vendor_hub_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; the zerolog default still writes to stderr.
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize Logger
	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

	if err := utils.ConfigureJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure JWT signing")
	}

	seed, err := fixtures.Load(cfg.Seed.Path)
	if err != nil {
		log.Fatal().Err(err).Str("seed_path", cfg.Seed.Path).Msg("Failed to load seed data")
	}
	l := ledger.New(seed.Products, seed.Stock, ledger.WithLogger(log.Logger.With().Str("component", "ledger").Logger()))
	utils.LogInfo("Ledger seeded", map[string]interface{}{
		"products": len(seed.Products),
		"stock":    len(seed.Stock),
		"stores":   len(seed.Stores),
	})

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, l, seed, router.Options{LowStockThreshold: cfg.Report.LowStockThreshold})

	port := cfg.Server.Port
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})
	utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + port + "/api/v1"})

	if err := engine.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
