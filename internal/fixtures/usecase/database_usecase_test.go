package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "fixturehub/internal/fixtures/usecase"
	"fixturehub/internal/shared/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropDatabase_Success(t *testing.T) {
	dropped := false
	repo := &seedRepoMock{
		DatabaseExistsFn: func(ctx context.Context, database string) (bool, error) {
			return true, nil
		},
		DropDatabaseFn: func(ctx context.Context, database string) error {
			dropped = true
			return nil
		},
	}

	uc := newTestFixtureUsecase(&sourceMock{}, repo)
	err := uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	require.NoError(t, err)
	assert.True(t, dropped)
}

func TestDropDatabase_AbsentIsNoop(t *testing.T) {
	dropped := false
	repo := &seedRepoMock{
		DatabaseExistsFn: func(ctx context.Context, database string) (bool, error) {
			return false, nil
		},
		DropDatabaseFn: func(ctx context.Context, database string) error {
			dropped = true
			return nil
		},
	}

	uc := newTestFixtureUsecase(&sourceMock{}, repo)
	err := uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	require.NoError(t, err)
	assert.False(t, dropped)
}

func TestDropDatabase_ExistenceCheckError(t *testing.T) {
	dropped := false
	repo := &seedRepoMock{
		DatabaseExistsFn: func(ctx context.Context, database string) (bool, error) {
			return false, errors.New("listDatabases failed")
		},
		DropDatabaseFn: func(ctx context.Context, database string) error {
			dropped = true
			return nil
		},
	}

	uc := newTestFixtureUsecase(&sourceMock{}, repo)
	err := uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check database existence")
	assert.False(t, dropped)
}

func TestDropDatabase_DropError(t *testing.T) {
	repo := &seedRepoMock{
		DropDatabaseFn: func(ctx context.Context, database string) error {
			return errors.New("dropDatabase failed")
		},
	}

	uc := newTestFixtureUsecase(&sourceMock{}, repo)
	err := uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	assert.Error(t, err)
}

func TestDropDatabase_PublishesDroppedEvent(t *testing.T) {
	bus := eventbus.NewEventBus(nil)
	received := make(chan eventbus.Event, 1)
	bus.Subscribe(eventbus.EventTypeDatabaseDropped, func(ctx context.Context, event eventbus.Event) error {
		received <- event
		return nil
	})

	uc := NewFixtureUsecase(&sourceMock{}, &seedRepoMock{}, bus, &MockLogger{})
	err := uc.DropDatabase(context.Background(), DropDatabaseRequest{Database: "appdb"})
	require.NoError(t, err)

	select {
	case event := <-received:
		data, ok := event.Data().(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "appdb", data["database"])
	case <-time.After(time.Second):
		t.Fatal("expected a database.dropped event")
	}
}
