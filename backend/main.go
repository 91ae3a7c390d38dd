package main

import (
	"log"
	"time"

	"genequest/backend/config"
	"genequest/backend/engine"
	"genequest/backend/middleware"
	"genequest/backend/routes"
	"genequest/backend/store"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Progression engine and write-through sync layer
	manager := engine.NewManager()
	sync := store.NewSyncController(
		store.NewGormStore(db),
		logger,
		time.Duration(cfg.SyncFlushSeconds)*time.Second,
		cfg.SyncRetryBudget,
	)
	sync.Start()
	defer sync.Stop()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, sync, manager)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
