package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixturehub/internal/di"
	httpadapter "fixturehub/internal/fixtures/adapter/http"
	"fixturehub/internal/fixtures/config"
	"fixturehub/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"localhost"`
	Port string `env:"SERVER_PORT" envDefault:"3000"`
}

func main() {
	fmt.Println("🚀 FixtureHub - Starting Application...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}
	// Load server configuration
	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewLogger()

	// Load fixtures configuration. Startup is refused outright on a production
	// environment: this server clears and drops real data on request.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load fixtures configuration: %v", err)
	}
	appLogger.Info("Application configuration loaded successfully",
		"environment", cfg.Environment,
		"fixturesRoot", cfg.FixturesRoot,
	)

	// Initialize Dependency Injection Container
	container := di.NewContainer()
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	// Initialize MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDBURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	// Verify MongoDB connection
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	appLogger.Info("MongoDB connection established successfully")

	// Initialize Fixtures Module through container
	if err := container.InitializeFixtures(mongoClient, cfg); err != nil {
		log.Fatalf("Failed to initialize fixtures module: %v", err)
	}
	appLogger.Info("Fixtures module initialized successfully")

	// Setup HTTP server (Fiber) with middleware
	app := fiber.New(fiber.Config{
		AppName:      "FixtureHub API v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	// Add middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(httpadapter.RequestIDMiddleware())

	// Add health check endpoint with container health status
	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "UNHEALTHY",
				"error":   err.Error(),
				"message": "One or more services are unhealthy",
			})
		}

		return c.JSON(fiber.Map{
			"status":      "HEALTHY",
			"message":     "FixtureHub API is running",
			"timestamp":   time.Now().UTC(),
			"environment": cfg.Environment,
			"modules": fiber.Map{
				"fixtures": "initialized",
			},
		})
	})

	// Register module routes
	fixturesModule := container.GetFixturesModule()
	if fixturesModule != nil {
		fixturesModule.RegisterRoutes(app)
		appLogger.Info("Fixtures routes registered")
	}

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("🌟 All modules initialized. Starting HTTP server on %s", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Errorf("Server failed to start: %v", err)
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)
		fmt.Println("🛑 Shutting down server gracefully...")

		// Shutdown the server with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}

	fmt.Println("✅ Application stopped gracefully.")
}
