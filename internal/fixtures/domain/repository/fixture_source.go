package repository

import (
	"context"

	"fixturehub/internal/fixtures/domain/model"
)

// FixtureSource provides access to fixture definitions stored outside the
// database, typically a directory tree on disk.
type FixtureSource interface {
	// ListFixtureNames scans the fixtures root and returns the distinct names
	// of fixtures that contain at least one recognized definition file. The
	// result is recomputed on every call; an unreadable root is an error.
	ListFixtureNames(ctx context.Context) ([]string, error)

	// LoadFixture resolves a fixture by name and parses all of its definition
	// files. A fixture directory that does not exist yields an error wrapping
	// errors.ErrFixtureNotFound.
	LoadFixture(ctx context.Context, name string) (*model.Fixture, error)
}
