package usecase

import (
	"context"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/fixtures/domain/repository"
	"fixturehub/internal/shared/eventbus"
	"fixturehub/internal/shared/logger"
)

// eventSource identifies this module as the origin of published events.
const eventSource = "fixtures"

// FixtureUsecaseInterface defines the contract for fixture operations
type FixtureUsecaseInterface interface {
	// Lifecycle operations
	LoadFixture(ctx context.Context, req LoadFixtureRequest) error
	UnloadFixture(ctx context.Context, req UnloadFixtureRequest) error

	// Destructive operations
	DropCollection(ctx context.Context, req DropCollectionRequest) error
	DropDatabase(ctx context.Context, req DropDatabaseRequest) error

	// Inspection operations
	GetCollection(ctx context.Context, req GetCollectionRequest) ([]model.Document, error)
	ListFixtures(ctx context.Context) ([]string, error)
}

// FixtureUsecase implements fixture business logic on top of the fixture
// source and the seed repository.
type FixtureUsecase struct {
	source   repository.FixtureSource
	seedRepo repository.SeedRepository
	events   eventbus.EventBusInterface
	logger   logger.Logger
}

// NewFixtureUsecase creates a new FixtureUsecase
func NewFixtureUsecase(
	source repository.FixtureSource,
	seedRepo repository.SeedRepository,
	events eventbus.EventBusInterface,
	logger logger.Logger,
) FixtureUsecaseInterface {
	return &FixtureUsecase{
		source:   source,
		seedRepo: seedRepo,
		events:   events,
		logger:   logger,
	}
}
