package usecase

import (
	"context"
	"fmt"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/shared/eventbus"
)

// Fixture lifecycle operations implementation
func (uc *FixtureUsecase) LoadFixture(ctx context.Context, req LoadFixtureRequest) error {
	uc.logger.Info("Loading fixture",
		"database", req.Database,
		"fixture", req.Fixture)

	fixture, err := uc.source.LoadFixture(ctx, req.Fixture)
	if err != nil {
		uc.logger.Error("Failed to resolve fixture", "fixture", req.Fixture, "error", err)
		return fmt.Errorf("failed to resolve fixture %s: %w", req.Fixture, err)
	}

	if err := uc.clearFixtureCollections(ctx, req.Database, fixture); err != nil {
		return err
	}

	inserted := 0
	for _, file := range fixture.Files {
		for _, collection := range file.Collections() {
			docs := file.Sets[collection]
			if err := uc.seedRepo.InsertDocuments(ctx, req.Database, collection, docs); err != nil {
				uc.logger.Error("Failed to load fixture documents",
					"database", req.Database,
					"fixture", req.Fixture,
					"file", file.Name,
					"collection", collection,
					"error", err)
				return fmt.Errorf("failed to load fixture %s: %w", req.Fixture, err)
			}
			inserted += len(docs)
		}
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeFixtureLoaded, map[string]interface{}{
		"database":  req.Database,
		"fixture":   req.Fixture,
		"documents": inserted,
	}, eventSource))

	uc.logger.Info("Fixture loaded successfully",
		"database", req.Database,
		"fixture", req.Fixture,
		"documents", inserted)
	return nil
}

func (uc *FixtureUsecase) UnloadFixture(ctx context.Context, req UnloadFixtureRequest) error {
	uc.logger.Info("Unloading fixture",
		"database", req.Database,
		"fixture", req.Fixture)

	fixture, err := uc.source.LoadFixture(ctx, req.Fixture)
	if err != nil {
		uc.logger.Error("Failed to resolve fixture", "fixture", req.Fixture, "error", err)
		return fmt.Errorf("failed to resolve fixture %s: %w", req.Fixture, err)
	}

	if err := uc.clearFixtureCollections(ctx, req.Database, fixture); err != nil {
		return err
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeFixtureUnloaded, map[string]interface{}{
		"database": req.Database,
		"fixture":  req.Fixture,
	}, eventSource))

	uc.logger.Info("Fixture unloaded successfully",
		"database", req.Database,
		"fixture", req.Fixture)
	return nil
}

func (uc *FixtureUsecase) ListFixtures(ctx context.Context) ([]string, error) {
	uc.logger.Debug("Listing fixtures")

	names, err := uc.source.ListFixtureNames(ctx)
	if err != nil {
		uc.logger.Error("Failed to list fixtures", "error", err)
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}

	uc.logger.Debug("Listed fixtures successfully", "count", len(names))
	return names, nil
}

// clearFixtureCollections removes every document from each collection the
// fixture defines. Collections are cleared before any insert so a load
// replaces data instead of merging with whatever is already there. There is
// no rollback: a failure part way through leaves earlier collections cleared.
func (uc *FixtureUsecase) clearFixtureCollections(ctx context.Context, database string, fixture *model.Fixture) error {
	for _, collection := range fixture.Collections() {
		if err := uc.seedRepo.ClearCollection(ctx, database, collection); err != nil {
			uc.logger.Error("Failed to clear fixture collection",
				"database", database,
				"fixture", fixture.Name,
				"collection", collection,
				"error", err)
			return fmt.Errorf("failed to unload fixture %s: %w", fixture.Name, err)
		}
	}
	return nil
}
