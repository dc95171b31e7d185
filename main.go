package main

import (
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"

	"recipehub-api/config"
	"recipehub-api/database"
	"recipehub-api/logging"
	"recipehub-api/middleware"
	"recipehub-api/routes"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with the initial admin account
	if err := database.SeedData(db); err != nil {
		slog.Warn("failed to seed database", "error", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "3001" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with logging and recovery
	router := gin.Default()

	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	slog.Info("starting RecipeHub API server", "port", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
