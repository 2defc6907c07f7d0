package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fixturehub/internal/fixtures/domain/model"
	"fixturehub/internal/fixtures/domain/repository"
	. "fixturehub/internal/fixtures/usecase"
	apperrors "fixturehub/internal/shared/errors"
	"fixturehub/internal/shared/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Utiliza los mocks centralizados para mantener la arquitectura hexagonal y el código limpio.
func newTestFixtureUsecase(source repository.FixtureSource, repo repository.SeedRepository) FixtureUsecaseInterface {
	return NewFixtureUsecase(source, repo, eventbus.NewEventBus(nil), &MockLogger{})
}

// MockSource especializado para pruebas de fixtures
// Solo sobreescribe los métodos necesarios para cada test

type sourceMock struct {
	repository.FixtureSource
	ListFixtureNamesFn func(ctx context.Context) ([]string, error)
	LoadFixtureFn      func(ctx context.Context, name string) (*model.Fixture, error)
}

func (m *sourceMock) ListFixtureNames(ctx context.Context) ([]string, error) {
	if m.ListFixtureNamesFn != nil {
		return m.ListFixtureNamesFn(ctx)
	}
	return []string{}, nil
}
func (m *sourceMock) LoadFixture(ctx context.Context, name string) (*model.Fixture, error) {
	if m.LoadFixtureFn != nil {
		return m.LoadFixtureFn(ctx, name)
	}
	return model.NewFixture(name, name, nil), nil
}

type seedRepoMock struct {
	repository.SeedRepository
	DatabaseExistsFn   func(ctx context.Context, database string) (bool, error)
	CollectionExistsFn func(ctx context.Context, database, collection string) (bool, error)
	ClearCollectionFn  func(ctx context.Context, database, collection string) error
	InsertDocumentsFn  func(ctx context.Context, database, collection string, docs []model.Document) error
	DropCollectionFn   func(ctx context.Context, database, collection string) error
	DropDatabaseFn     func(ctx context.Context, database string) error
	ReadCollectionFn   func(ctx context.Context, database, collection string) ([]model.Document, error)
}

func (m *seedRepoMock) DatabaseExists(ctx context.Context, database string) (bool, error) {
	if m.DatabaseExistsFn != nil {
		return m.DatabaseExistsFn(ctx, database)
	}
	return true, nil
}
func (m *seedRepoMock) CollectionExists(ctx context.Context, database, collection string) (bool, error) {
	if m.CollectionExistsFn != nil {
		return m.CollectionExistsFn(ctx, database, collection)
	}
	return true, nil
}
func (m *seedRepoMock) ClearCollection(ctx context.Context, database, collection string) error {
	if m.ClearCollectionFn != nil {
		return m.ClearCollectionFn(ctx, database, collection)
	}
	return nil
}
func (m *seedRepoMock) InsertDocuments(ctx context.Context, database, collection string, docs []model.Document) error {
	if m.InsertDocumentsFn != nil {
		return m.InsertDocumentsFn(ctx, database, collection, docs)
	}
	return nil
}
func (m *seedRepoMock) DropCollection(ctx context.Context, database, collection string) error {
	if m.DropCollectionFn != nil {
		return m.DropCollectionFn(ctx, database, collection)
	}
	return nil
}
func (m *seedRepoMock) DropDatabase(ctx context.Context, database string) error {
	if m.DropDatabaseFn != nil {
		return m.DropDatabaseFn(ctx, database)
	}
	return nil
}
func (m *seedRepoMock) ReadCollection(ctx context.Context, database, collection string) ([]model.Document, error) {
	if m.ReadCollectionFn != nil {
		return m.ReadCollectionFn(ctx, database, collection)
	}
	return []model.Document{}, nil
}

// twoFileFixture builds a fixture where two files contribute documents to the
// same collection, which is how append semantics across files get exercised.
func twoFileFixture(name string) *model.Fixture {
	return model.NewFixture(name, name, []model.DefinitionFile{
		{
			Name:   "b_mixed.json",
			Format: model.FormatJSON,
			Sets: map[string][]model.Document{
				"orders": {{"id": "o1"}, {"id": "o2"}},
				"users":  {{"name": "bob"}},
			},
		},
		{
			Name:   "a_users.json",
			Format: model.FormatJSON,
			Sets: map[string][]model.Document{
				"users": {{"name": "alice"}},
			},
		},
	})
}

func TestLoadFixture_ClearsThenInsertsInOrder(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return twoFileFixture(name), nil
		},
	}

	var calls []string
	repo := &seedRepoMock{
		ClearCollectionFn: func(ctx context.Context, database, collection string) error {
			calls = append(calls, "clear:"+collection)
			return nil
		},
		InsertDocumentsFn: func(ctx context.Context, database, collection string, docs []model.Document) error {
			calls = append(calls, fmt.Sprintf("insert:%s:%d", collection, len(docs)))
			return nil
		},
	}

	uc := newTestFixtureUsecase(source, repo)
	err := uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "demo"})
	require.NoError(t, err)

	// Every referenced collection is cleared before the first insert, files
	// load in name order, and a later file appends to collections an earlier
	// file already populated.
	assert.Equal(t, []string{
		"clear:orders",
		"clear:users",
		"insert:users:1",
		"insert:orders:2",
		"insert:users:1",
	}, calls)
}

func TestLoadFixture_NotFound(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return nil, apperrors.NewFixtureNotFoundError(name)
		},
	}

	uc := newTestFixtureUsecase(source, &seedRepoMock{})
	err := uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "missing"})
	require.Error(t, err)
	assert.True(t, apperrors.IsFixtureNotFound(err))
}

func TestLoadFixture_ClearError(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return twoFileFixture(name), nil
		},
	}

	inserts := 0
	repo := &seedRepoMock{
		ClearCollectionFn: func(ctx context.Context, database, collection string) error {
			return errors.New("clear failed")
		},
		InsertDocumentsFn: func(ctx context.Context, database, collection string, docs []model.Document) error {
			inserts++
			return nil
		},
	}

	uc := newTestFixtureUsecase(source, repo)
	err := uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "demo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unload fixture")
	assert.Zero(t, inserts)
}

func TestLoadFixture_InsertErrorHasNoRollback(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return twoFileFixture(name), nil
		},
	}

	var inserted []string
	repo := &seedRepoMock{
		InsertDocumentsFn: func(ctx context.Context, database, collection string, docs []model.Document) error {
			if len(inserted) == 1 {
				return errors.New("insert failed")
			}
			inserted = append(inserted, collection)
			return nil
		},
	}

	uc := newTestFixtureUsecase(source, repo)
	err := uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "demo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load fixture")
	// The first insert stays applied; nothing undoes it.
	assert.Equal(t, []string{"users"}, inserted)
}

func TestLoadFixture_PublishesLoadedEvent(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return twoFileFixture(name), nil
		},
	}

	bus := eventbus.NewEventBus(nil)
	received := make(chan eventbus.Event, 1)
	bus.Subscribe(eventbus.EventTypeFixtureLoaded, func(ctx context.Context, event eventbus.Event) error {
		received <- event
		return nil
	})

	uc := NewFixtureUsecase(source, &seedRepoMock{}, bus, &MockLogger{})
	err := uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "demo"})
	require.NoError(t, err)

	select {
	case event := <-received:
		data, ok := event.Data().(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "appdb", data["database"])
		assert.Equal(t, "demo", data["fixture"])
		assert.Equal(t, 4, data["documents"])
	case <-time.After(time.Second):
		t.Fatal("expected a fixture.loaded event")
	}
}

func TestUnloadFixture_ClearsWithoutInserting(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return twoFileFixture(name), nil
		},
	}

	var cleared []string
	inserts := 0
	repo := &seedRepoMock{
		ClearCollectionFn: func(ctx context.Context, database, collection string) error {
			cleared = append(cleared, collection)
			return nil
		},
		InsertDocumentsFn: func(ctx context.Context, database, collection string, docs []model.Document) error {
			inserts++
			return nil
		},
	}

	uc := newTestFixtureUsecase(source, repo)
	err := uc.UnloadFixture(context.Background(), UnloadFixtureRequest{Database: "appdb", Fixture: "demo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, cleared)
	assert.Zero(t, inserts)
}

func TestUnloadFixture_NotFound(t *testing.T) {
	source := &sourceMock{
		LoadFixtureFn: func(ctx context.Context, name string) (*model.Fixture, error) {
			return nil, apperrors.NewFixtureNotFoundError(name)
		},
	}

	uc := newTestFixtureUsecase(source, &seedRepoMock{})
	err := uc.UnloadFixture(context.Background(), UnloadFixtureRequest{Database: "appdb", Fixture: "missing"})
	require.Error(t, err)
	assert.True(t, apperrors.IsFixtureNotFound(err))
}

func TestListFixtures_Success(t *testing.T) {
	source := &sourceMock{
		ListFixtureNamesFn: func(ctx context.Context) ([]string, error) {
			return []string{"orders", "users"}, nil
		},
	}

	uc := newTestFixtureUsecase(source, &seedRepoMock{})
	names, err := uc.ListFixtures(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, names)
}

func TestListFixtures_ScanError(t *testing.T) {
	source := &sourceMock{
		ListFixtureNamesFn: func(ctx context.Context) ([]string, error) {
			return nil, apperrors.NewCatalogScanError(errors.New("permission denied"))
		},
	}

	uc := newTestFixtureUsecase(source, &seedRepoMock{})
	names, err := uc.ListFixtures(context.Background())
	require.Error(t, err)
	assert.Nil(t, names)
	assert.True(t, apperrors.IsCatalogScan(err))
}

// Flujo completo con los mocks centralizados: ninguna operación requiere
// configuración específica por test.
func TestFixtureUsecase_FullLifecycle(t *testing.T) {
	uc := NewFixtureUsecase(&MockFixtureSource{}, &MockSeedRepo{}, eventbus.NewEventBus(nil), &MockLogger{})

	names, err := uc.ListFixtures(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, names)

	err = uc.LoadFixture(context.Background(), LoadFixtureRequest{Database: "appdb", Fixture: "users"})
	require.NoError(t, err)

	err = uc.UnloadFixture(context.Background(), UnloadFixtureRequest{Database: "appdb", Fixture: "users"})
	require.NoError(t, err)

	err = uc.DropCollection(context.Background(), DropCollectionRequest{Database: "appdb", Collection: "users"})
	require.NoError(t, err)

	err = uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	require.NoError(t, err)
}
