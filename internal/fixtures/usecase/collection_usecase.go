package usecase

import (
	"context"
	"fmt"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/shared/eventbus"
)

// Collection operations implementation
func (uc *FixtureUsecase) DropCollection(ctx context.Context, req DropCollectionRequest) error {
	uc.logger.Info("Dropping collection",
		"database", req.Database,
		"collection", req.Collection)

	exists, err := uc.seedRepo.CollectionExists(ctx, req.Database, req.Collection)
	if err != nil {
		uc.logger.Error("Failed to check collection existence", "error", err)
		return fmt.Errorf("failed to check collection existence: %w", err)
	}
	if !exists {
		uc.logger.Info("Collection does not exist, nothing to drop",
			"database", req.Database,
			"collection", req.Collection)
		return nil
	}

	if err := uc.seedRepo.DropCollection(ctx, req.Database, req.Collection); err != nil {
		uc.logger.Error("Failed to drop collection", "error", err)
		return fmt.Errorf("failed to drop collection: %w", err)
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeCollectionDropped, map[string]interface{}{
		"database":   req.Database,
		"collection": req.Collection,
	}, eventSource))

	uc.logger.Info("Collection dropped successfully",
		"database", req.Database,
		"collection", req.Collection)
	return nil
}

func (uc *FixtureUsecase) GetCollection(ctx context.Context, req GetCollectionRequest) ([]model.Document, error) {
	uc.logger.Debug("Reading collection",
		"database", req.Database,
		"collection", req.Collection)

	docs, err := uc.seedRepo.ReadCollection(ctx, req.Database, req.Collection)
	if err != nil {
		uc.logger.Error("Failed to read collection", "error", err)
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	return docs, nil
}
