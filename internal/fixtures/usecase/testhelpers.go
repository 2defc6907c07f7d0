// Centralized test helpers for fixture usecase tests
// Place all shared mocks and helpers here to avoid redeclaration errors.
package usecase

import (
	"context"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/shared/logger"
)

// MockFixtureSource simula el catálogo de fixtures para los tests
type MockFixtureSource struct{}

func (m *MockFixtureSource) ListFixtureNames(ctx context.Context) ([]string, error) {
	return []string{"users"}, nil
}

func (m *MockFixtureSource) LoadFixture(ctx context.Context, name string) (*model.Fixture, error) {
	return model.NewFixture(name, name, []model.DefinitionFile{
		{
			Name:   "users.json",
			Format: model.FormatJSON,
			Sets: map[string][]model.Document{
				"users": {{"name": "alice"}},
			},
		},
	}), nil
}

// MockSeedRepo simula el repositorio de datos con operaciones no-op
type MockSeedRepo struct{}

func (m *MockSeedRepo) DatabaseExists(ctx context.Context, database string) (bool, error) {
	return true, nil
}
func (m *MockSeedRepo) CollectionExists(ctx context.Context, database, collection string) (bool, error) {
	return true, nil
}
func (m *MockSeedRepo) ClearCollection(ctx context.Context, database, collection string) error {
	return nil
}
func (m *MockSeedRepo) InsertDocuments(ctx context.Context, database, collection string, docs []model.Document) error {
	return nil
}
func (m *MockSeedRepo) DropCollection(ctx context.Context, database, collection string) error {
	return nil
}
func (m *MockSeedRepo) DropDatabase(ctx context.Context, database string) error {
	return nil
}
func (m *MockSeedRepo) ReadCollection(ctx context.Context, database, collection string) ([]model.Document, error) {
	return []model.Document{}, nil
}

// MockLogger implements logger.Logger with no-op methods for tests
type MockLogger struct{}

func (m *MockLogger) Info(args ...interface{})                               {}
func (m *MockLogger) Error(args ...interface{})                              {}
func (m *MockLogger) Debug(args ...interface{})                              {}
func (m *MockLogger) Warn(args ...interface{})                               {}
func (m *MockLogger) Fatal(args ...interface{})                              {}
func (m *MockLogger) Debugf(format string, args ...interface{})              {}
func (m *MockLogger) Infof(format string, args ...interface{})               {}
func (m *MockLogger) Warnf(format string, args ...interface{})               {}
func (m *MockLogger) Errorf(format string, args ...interface{})              {}
func (m *MockLogger) Fatalf(format string, args ...interface{})              {}
func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger { return m }
func (m *MockLogger) WithContext(ctx context.Context) logger.Logger          { return m }
func (m *MockLogger) WithComponent(component string) logger.Logger           { return m }
