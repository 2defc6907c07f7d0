package fixtures

import (
	"context"

	httpadapter "fixturehub/internal/fixtures/adapter/http"
	"fixturehub/internal/fixtures/adapter/persistence/diskstore"
	mongodbpersistence "fixturehub/internal/fixtures/adapter/persistence/mongodb"
	"fixturehub/internal/fixtures/config"
	"fixturehub/internal/fixtures/domain/repository"
	"fixturehub/internal/fixtures/usecase"
	"fixturehub/internal/shared/eventbus"
	"fixturehub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// FixturesModule represents the core fixtures module: catalog, lifecycle and
// destructive operations over a single MongoDB deployment.
type FixturesModule struct {
	Config         *config.Config
	Source         repository.FixtureSource
	SeedRepo       repository.SeedRepository
	FixtureUsecase usecase.FixtureUsecaseInterface
	EventBus       *eventbus.EventBus
	Logger         logger.Logger
}

// NewFixturesModule creates and initializes a new fixtures module.
func NewFixturesModule(
	mongoClient *mongo.Client,
	cfg *config.Config,
	log logger.Logger,
) (*FixturesModule, error) {
	log.Info("Initializing Fixtures Module...")

	// Initialize EventBus
	eventBus := eventbus.NewEventBus(log)

	// Initialize the on-disk fixture catalog
	source := diskstore.NewFixtureStore(cfg.FixturesRoot, log)
	log.Info("FixtureStore initialized successfully.", "fixturesRoot", cfg.FixturesRoot)

	// Initialize the MongoDB seed repository
	seedRepo := mongodbpersistence.NewSeedRepository(mongoClient, log)
	log.Info("SeedRepository initialized successfully.")

	// Initialize FixtureUsecase with the catalog and seed repository
	fixtureUC := usecase.NewFixtureUsecase(source, seedRepo, eventBus, log)
	log.Info("FixtureUsecase initialized successfully.")

	module := &FixturesModule{
		Config:         cfg,
		Source:         source,
		SeedRepo:       seedRepo,
		FixtureUsecase: fixtureUC,
		EventBus:       eventBus,
		Logger:         log,
	}
	module.subscribeAuditLog()

	return module, nil
}

// subscribeAuditLog records every lifecycle and destructive event on the bus
// so data mutations remain traceable in the server log.
func (m *FixturesModule) subscribeAuditLog() {
	auditTypes := []string{
		eventbus.EventTypeFixtureLoaded,
		eventbus.EventTypeFixtureUnloaded,
		eventbus.EventTypeCollectionDropped,
		eventbus.EventTypeDatabaseDropped,
	}
	for _, eventType := range auditTypes {
		m.EventBus.Subscribe(eventType, m.auditEvent)
	}
	m.Logger.Info("Audit log subscribed to fixture events.")
}

func (m *FixturesModule) auditEvent(ctx context.Context, event eventbus.Event) error {
	m.Logger.WithFields(map[string]interface{}{
		"event":     event.Type(),
		"source":    event.Source(),
		"data":      event.Data(),
		"timestamp": event.Timestamp(),
	}).Info("Fixture event recorded")
	return nil
}

// RegisterRoutes registers the HTTP routes for the fixtures module.
func (m *FixturesModule) RegisterRoutes(router fiber.Router) {
	httpHandler := httpadapter.NewFixtureHTTPHandler(m.FixtureUsecase, m.Logger)
	httpHandler.RegisterRoutes(router)

	m.Logger.Info("Fixtures HTTP routes registered.")
}

// Stop gracefully shuts down the fixtures module.
func (m *FixturesModule) Stop() error {
	m.Logger.Info("Stopping Fixtures Module...")
	for _, eventType := range m.EventBus.GetEventTypes() {
		m.EventBus.Unsubscribe(eventType)
	}
	m.Logger.Info("Fixtures Module stopped.")
	return nil
}
