package mongodb

import (
	"context"
	"fmt"
	"reflect"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/fixtures/domain/repository"
	"fixturehub/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SeedRepository implements repository.SeedRepository on a single MongoDB
// client. All operations are awaited and unconditional; guarding against
// absent targets is the caller's job.
type SeedRepository struct {
	client   *mongo.Client
	registry *bsoncodec.Registry
	log      logger.Logger
}

// NewSeedRepository creates a MongoDB-backed seed repository.
func NewSeedRepository(client *mongo.Client, log logger.Logger) repository.SeedRepository {
	// Decode embedded documents into plain maps so reads serialize to JSON
	// objects instead of ordered key/value pairs.
	registry := bson.NewRegistry()
	registry.RegisterTypeMapEntry(bsontype.EmbeddedDocument, reflect.TypeOf(bson.M{}))

	return &SeedRepository{
		client:   client,
		registry: registry,
		log:      log,
	}
}

func (r *SeedRepository) database(name string) *mongo.Database {
	return r.client.Database(name, options.Database().SetRegistry(r.registry))
}

// DatabaseExists reports whether a database with the given name is listed by
// the server. An absent database is a false result, not an error.
func (r *SeedRepository) DatabaseExists(ctx context.Context, database string) (bool, error) {
	names, err := r.client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to list database names",
			zap.String("database", database),
			zap.Error(err))
		return false, fmt.Errorf("failed to list database names: %w", err)
	}

	for _, name := range names {
		if name == database {
			return true, nil
		}
	}
	return false, nil
}

// CollectionExists reports whether the collection is listed in the database's
// catalog. An absent database or collection is a false result, not an error.
func (r *SeedRepository) CollectionExists(ctx context.Context, database, collection string) (bool, error) {
	names, err := r.database(database).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to list collection names",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Error(err))
		return false, fmt.Errorf("failed to list collection names in %s: %w", database, err)
	}

	for _, name := range names {
		if name == collection {
			return true, nil
		}
	}
	return false, nil
}

// ClearCollection removes every document from the collection. Clearing a
// collection that does not exist removes nothing and succeeds.
func (r *SeedRepository) ClearCollection(ctx context.Context, database, collection string) error {
	result, err := r.database(database).Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to clear collection",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Error(err))
		return fmt.Errorf("failed to clear collection %s.%s: %w", database, collection, err)
	}

	r.log.Debug("Cleared collection",
		zap.String("database", database),
		zap.String("collection", collection),
		zap.Int64("deleted", result.DeletedCount))
	return nil
}

// InsertDocuments inserts the documents in order. Inserting an empty batch is
// a no-op because MongoDB rejects empty insertMany commands.
func (r *SeedRepository) InsertDocuments(ctx context.Context, database, collection string, docs []model.Document) error {
	if len(docs) == 0 {
		return nil
	}

	documents := make([]interface{}, len(docs))
	for i, doc := range docs {
		documents[i] = doc
	}

	result, err := r.database(database).Collection(collection).InsertMany(ctx, documents)
	if err != nil {
		r.log.Error("Failed to insert documents",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Int("count", len(docs)),
			zap.Error(err))
		return fmt.Errorf("failed to insert documents into %s.%s: %w", database, collection, err)
	}

	r.log.Debug("Inserted documents",
		zap.String("database", database),
		zap.String("collection", collection),
		zap.Int("inserted", len(result.InsertedIDs)))
	return nil
}

// DropCollection drops the collection and waits for the server to finish.
func (r *SeedRepository) DropCollection(ctx context.Context, database, collection string) error {
	if err := r.database(database).Collection(collection).Drop(ctx); err != nil {
		r.log.Error("Failed to drop collection",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Error(err))
		return fmt.Errorf("failed to drop collection %s.%s: %w", database, collection, err)
	}

	r.log.Info("Dropped collection",
		zap.String("database", database),
		zap.String("collection", collection))
	return nil
}

// DropDatabase drops the database and waits for the server to finish.
func (r *SeedRepository) DropDatabase(ctx context.Context, database string) error {
	if err := r.database(database).Drop(ctx); err != nil {
		r.log.Error("Failed to drop database",
			zap.String("database", database),
			zap.Error(err))
		return fmt.Errorf("failed to drop database %s: %w", database, err)
	}

	r.log.Info("Dropped database", zap.String("database", database))
	return nil
}

// ReadCollection returns every document in the collection. A missing database
// or collection reads as an empty slice.
func (r *SeedRepository) ReadCollection(ctx context.Context, database, collection string) ([]model.Document, error) {
	cursor, err := r.database(database).Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to query collection",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Error(err))
		return nil, fmt.Errorf("failed to query collection %s.%s: %w", database, collection, err)
	}

	// Start from an allocated slice so an empty collection serializes as []
	// rather than null.
	docs := make([]model.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("Failed to decode documents",
			zap.String("database", database),
			zap.String("collection", collection),
			zap.Error(err))
		return nil, fmt.Errorf("failed to decode documents from %s.%s: %w", database, collection, err)
	}

	r.log.Debug("Read collection",
		zap.String("database", database),
		zap.String("collection", collection),
		zap.Int("count", len(docs)))
	return docs, nil
}
