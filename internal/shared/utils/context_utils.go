package utils

import (
	"context"
	"errors"

	"fixturehub/internal/shared/contextkeys"
)

// Common context errors
var (
	ErrRequestIDNotFound   = errors.New("requestID not found in context")
	ErrRequestIDNotString  = errors.New("requestID in context is not a string")
	ErrDatabaseNotFound    = errors.New("database not found in context")
	ErrDatabaseNotString   = errors.New("database in context is not a string")
	ErrFixtureNotFound     = errors.New("fixture not found in context")
	ErrFixtureNotString    = errors.New("fixture in context is not a string")
	ErrCollectionNotFound  = errors.New("collection not found in context")
	ErrCollectionNotString = errors.New("collection in context is not a string")
)

// GetRequestIDFromContext retrieves the request ID from the context.
// It returns the request ID and an error if the request ID is not found or is not a string.
func GetRequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.RequestIDKey)
	if val == nil {
		return "", ErrRequestIDNotFound
	}
	requestID, ok := val.(string)
	if !ok {
		return "", ErrRequestIDNotString
	}
	return requestID, nil
}

// GetDatabaseFromContext retrieves the target database name from the context.
func GetDatabaseFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.DatabaseKey)
	if val == nil {
		return "", ErrDatabaseNotFound
	}
	database, ok := val.(string)
	if !ok {
		return "", ErrDatabaseNotString
	}
	return database, nil
}

// GetFixtureFromContext retrieves the fixture name from the context.
func GetFixtureFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.FixtureKey)
	if val == nil {
		return "", ErrFixtureNotFound
	}
	fixture, ok := val.(string)
	if !ok {
		return "", ErrFixtureNotString
	}
	return fixture, nil
}

// GetCollectionFromContext retrieves the collection name from the context.
func GetCollectionFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(contextkeys.CollectionKey)
	if val == nil {
		return "", ErrCollectionNotFound
	}
	collection, ok := val.(string)
	if !ok {
		return "", ErrCollectionNotString
	}
	return collection, nil
}

// Context builder functions

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, requestID)
}

// WithDatabase adds the target database name to context
func WithDatabase(ctx context.Context, database string) context.Context {
	return context.WithValue(ctx, contextkeys.DatabaseKey, database)
}

// WithFixture adds the fixture name to context
func WithFixture(ctx context.Context, fixture string) context.Context {
	return context.WithValue(ctx, contextkeys.FixtureKey, fixture)
}

// WithCollection adds the collection name to context
func WithCollection(ctx context.Context, collection string) context.Context {
	return context.WithValue(ctx, contextkeys.CollectionKey, collection)
}

// WithComponent adds component name to context
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, contextkeys.ComponentKey, component)
}

// WithOperation adds operation name to context
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, contextkeys.OperationKey, operation)
}

// Optional getters that return default values instead of errors

// GetRequestIDOrDefault retrieves the request ID from context or returns a default value
func GetRequestIDOrDefault(ctx context.Context, def string) string {
	if v, err := GetRequestIDFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetDatabaseOrDefault retrieves the database name from context or returns a default value
func GetDatabaseOrDefault(ctx context.Context, def string) string {
	if v, err := GetDatabaseFromContext(ctx); err == nil {
		return v
	}
	return def
}

// GetFixtureOrDefault retrieves the fixture name from context or returns a default value
func GetFixtureOrDefault(ctx context.Context, def string) string {
	if v, err := GetFixtureFromContext(ctx); err == nil {
		return v
	}
	return def
}

// HasX checks
func HasRequestID(ctx context.Context) bool {
	_, err := GetRequestIDFromContext(ctx)
	return err == nil
}

func HasDatabase(ctx context.Context) bool {
	_, err := GetDatabaseFromContext(ctx)
	return err == nil
}

func HasFixture(ctx context.Context) bool {
	_, err := GetFixtureFromContext(ctx)
	return err == nil
}
