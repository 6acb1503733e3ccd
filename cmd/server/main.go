package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/mpetrov/yatube/internal/cache"
	"github.com/mpetrov/yatube/internal/router"
	"github.com/mpetrov/yatube/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Page cache for the index listing
	pageCache := cache.NewMemory()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, pageCache, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
