package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fixturehub/internal/fixtures"
	"fixturehub/internal/fixtures/config"
	"fixturehub/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Container represents a dependency injection container with proper lifecycle management
type Container struct {
	mu sync.RWMutex
	// Module instances
	FixturesModule *fixtures.FixturesModule
	// Database connections
	MongoClient *mongo.Client
	// Configuration
	Config *config.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer() *Container {
	return &Container{}
}

// InitializeFixtures initializes the fixtures module against the shared MongoDB client
func (c *Container) InitializeFixtures(mongoClient *mongo.Client, cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mongoClient == nil {
		return fmt.Errorf("MongoDB client must be initialized before the fixtures module")
	}
	if cfg == nil {
		return fmt.Errorf("configuration must be loaded before the fixtures module")
	}

	// Store references
	c.MongoClient = mongoClient
	c.Config = cfg

	// Initialize logger if not already initialized
	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	fixturesModule, err := fixtures.NewFixturesModule(mongoClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create fixtures module: %w", err)
	}

	c.FixturesModule = fixturesModule
	return nil
}

// GetFixturesModule returns the fixtures module instance
func (c *Container) GetFixturesModule() *fixtures.FixturesModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FixturesModule
}

// HealthCheck performs health check on all registered services
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check MongoDB connection
	if c.MongoClient != nil {
		if err := c.MongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	// The fixtures module holds no connections of its own; it is healthy
	// whenever it is initialized.
	return nil
}

// Cleanup performs cleanup of registered services with proper shutdown order
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	// Cleanup modules in reverse order of initialization. The MongoDB client
	// is owned by the caller and is not disconnected here.
	if c.FixturesModule != nil {
		if err := c.FixturesModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop fixtures module: %w", err))
		}
		c.FixturesModule = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}

	return nil
}

// Close gracefully shuts down all services in the container with timeout
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if c.Logger != nil {
		c.Logger.Info("Closing DI Container resources...")
	}

	if err := c.Cleanup(ctx); err != nil {
		if c.Logger != nil {
			c.Logger.Warn("Cleanup errors occurred during container close", "error", err)
		}
	}

	if c.Logger != nil {
		c.Logger.Info("DI Container resources closed.")
	}
	return nil
}
