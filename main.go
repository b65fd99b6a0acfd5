package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"taskhub/config"
	"taskhub/middleware"
	"taskhub/realtime"
	"taskhub/routes"
	"taskhub/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "TASKHUB: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Sentry error capture when a DSN is configured
	if config.AppConfig.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		})
		if err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Real-time hub and the online-presence registry behind it
	hub := realtime.NewHub()
	var presence realtime.Registry
	if config.AppConfig.Redis.Enabled {
		presence = realtime.NewRedisRegistry(config.AppConfig.Redis)
	} else {
		presence = realtime.NewMemoryRegistry()
	}

	// Initialize and start the connection sweeper
	presenceWorker := worker.NewPresenceWorker(hub, log.New(os.Stdout, "PRESENCE: ", log.LstdFlags))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go presenceWorker.Start(ctx)

	// Health check endpoint. Registered before SetupRoutes so the trailing
	// 404 handler does not shadow it.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Setup routes
	routes.SetupRoutes(app, config.DB, hub, presence)

	// Start server
	logger.Printf("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
