package http

import (
	"context"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/fixtures/usecase"
	"fixturehub/internal/shared/logger"
)

// MockFixtureUC implementa FixtureUsecaseInterface para los tests HTTP
// Centralizada para evitar duplicación y mantener consistencia
type MockFixtureUC struct {
	LoadFixtureFn    func(ctx context.Context, req usecase.LoadFixtureRequest) error
	UnloadFixtureFn  func(ctx context.Context, req usecase.UnloadFixtureRequest) error
	DropCollectionFn func(ctx context.Context, req usecase.DropCollectionRequest) error
	DropDatabaseFn   func(ctx context.Context, req usecase.DropDatabaseRequest) error
	GetCollectionFn  func(ctx context.Context, req usecase.GetCollectionRequest) ([]model.Document, error)
	ListFixturesFn   func(ctx context.Context) ([]string, error)
}

// Métodos funcionales que pueden ser customizados por test
func (m *MockFixtureUC) LoadFixture(ctx context.Context, req usecase.LoadFixtureRequest) error {
	if m.LoadFixtureFn != nil {
		return m.LoadFixtureFn(ctx, req)
	}
	return nil
}

func (m *MockFixtureUC) UnloadFixture(ctx context.Context, req usecase.UnloadFixtureRequest) error {
	if m.UnloadFixtureFn != nil {
		return m.UnloadFixtureFn(ctx, req)
	}
	return nil
}

func (m *MockFixtureUC) DropCollection(ctx context.Context, req usecase.DropCollectionRequest) error {
	if m.DropCollectionFn != nil {
		return m.DropCollectionFn(ctx, req)
	}
	return nil
}

func (m *MockFixtureUC) DropDatabase(ctx context.Context, req usecase.DropDatabaseRequest) error {
	if m.DropDatabaseFn != nil {
		return m.DropDatabaseFn(ctx, req)
	}
	return nil
}

func (m *MockFixtureUC) GetCollection(ctx context.Context, req usecase.GetCollectionRequest) ([]model.Document, error) {
	if m.GetCollectionFn != nil {
		return m.GetCollectionFn(ctx, req)
	}
	return []model.Document{}, nil
}

func (m *MockFixtureUC) ListFixtures(ctx context.Context) ([]string, error) {
	if m.ListFixturesFn != nil {
		return m.ListFixturesFn(ctx)
	}
	return []string{}, nil
}

// TestLogger implementa logger.Logger sin salida para mantener los tests limpios
type TestLogger struct{}

func (TestLogger) Debug(args ...interface{})                          {}
func (TestLogger) Info(args ...interface{})                           {}
func (TestLogger) Warn(args ...interface{})                           {}
func (TestLogger) Error(args ...interface{})                          {}
func (TestLogger) Fatal(args ...interface{})                          {}
func (TestLogger) Debugf(format string, args ...interface{})          {}
func (TestLogger) Infof(format string, args ...interface{})           {}
func (TestLogger) Warnf(format string, args ...interface{})           {}
func (TestLogger) Errorf(format string, args ...interface{})          {}
func (TestLogger) Fatalf(format string, args ...interface{})          {}
func (l TestLogger) WithFields(fields map[string]interface{}) logger.Logger { return l }
func (l TestLogger) WithContext(ctx context.Context) logger.Logger          { return l }
func (l TestLogger) WithComponent(component string) logger.Logger           { return l }
