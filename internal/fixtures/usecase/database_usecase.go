package usecase

import (
	"context"
	"fmt"

	"fixturehub/internal/shared/eventbus"
)

// Database operations implementation
func (uc *FixtureUsecase) DropDatabase(ctx context.Context, req DropDatabaseRequest) error {
	uc.logger.Info("Dropping database", "database", req.Database)

	exists, err := uc.seedRepo.DatabaseExists(ctx, req.Database)
	if err != nil {
		uc.logger.Error("Failed to check database existence", "error", err)
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if !exists {
		uc.logger.Info("Database does not exist, nothing to drop", "database", req.Database)
		return nil
	}

	if err := uc.seedRepo.DropDatabase(ctx, req.Database); err != nil {
		uc.logger.Error("Failed to drop database", "error", err)
		return fmt.Errorf("failed to drop database: %w", err)
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeDatabaseDropped, map[string]interface{}{
		"database": req.Database,
	}, eventSource))

	uc.logger.Info("Database dropped successfully", "database", req.Database)
	return nil
}
