package repository

import (
	"context"

	"fixturehub/internal/fixtures/domain/model"
)

// SeedRepository executes seeding and inspection operations against the
// document database. All operations act on a named database of the shared
// server connection and are attempted exactly once.
type SeedRepository interface {
	// DatabaseExists reports whether the named database is present on the
	// server. A database that has never been written to does not exist.
	DatabaseExists(ctx context.Context, database string) (bool, error)

	// CollectionExists reports whether the named collection is present in the
	// database. A missing database yields false, never an error.
	CollectionExists(ctx context.Context, database, collection string) (bool, error)

	// ClearCollection removes every document from the collection while keeping
	// the collection itself (and its indexes) in place.
	ClearCollection(ctx context.Context, database, collection string) error

	// InsertDocuments writes the documents into the collection in the given
	// order. Inserting zero documents is a no-op.
	InsertDocuments(ctx context.Context, database, collection string, docs []model.Document) error

	// DropCollection removes the collection entirely.
	DropCollection(ctx context.Context, database, collection string) error

	// DropDatabase removes the database entirely. The call blocks until the
	// server acknowledges the drop.
	DropDatabase(ctx context.Context, database string) error

	// ReadCollection returns every document of the collection in natural
	// order. A missing database or collection yields an empty slice.
	ReadCollection(ctx context.Context, database, collection string) ([]model.Document, error)
}
