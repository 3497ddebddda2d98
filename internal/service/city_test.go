package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibe-gaming/cities/internal/domain"
	"github.com/vibe-gaming/cities/internal/repository"
)

func newTestServices(t *testing.T) (*Services, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewServices(Deps{Repos: repository.NewMemoryRepositories(store)}), store
}

func TestCityService_CreateAndGet(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	city := domain.City{
		ID:    "01001",
		Name:  "AGAWAM",
		State: "MA",
		Attributes: map[string]any{
			"pop": 15338,
			"loc": []any{-72.622739, 42.070206},
		},
	}

	id, err := services.Cities.Create(ctx, city)
	require.NoError(t, err)
	assert.Equal(t, "01001", id)

	got, err := services.Cities.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, city.Document(), got.Document())
}

func TestCityService_CreateAssignsID(t *testing.T) {
	services, _ := newTestServices(t)

	id, err := services.Cities.Create(context.Background(), domain.City{Name: "BOSTON", State: "MA"})
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestCityService_CreateDuplicate(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	_, err := services.Cities.Create(ctx, domain.City{ID: "1", Name: "A", State: "MA"})
	require.NoError(t, err)

	_, err = services.Cities.Create(ctx, domain.City{ID: "1", Name: "B", State: "MA"})
	assert.ErrorIs(t, err, ErrCityAlreadyExists)
}

func TestCityService_GetByIDNotFound(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Cities.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestCityService_StoreFailure(t *testing.T) {
	services, store := newTestServices(t)
	store.Err = errors.New("connection refused")
	ctx := context.Background()

	_, err := services.Cities.Create(ctx, domain.City{Name: "A", State: "MA"})
	assert.ErrorIs(t, err, store.Err)

	_, err = services.Cities.GetByID(ctx, "1")
	assert.ErrorIs(t, err, store.Err)
	assert.NotErrorIs(t, err, ErrCityNotFound)

	_, _, err = services.Cities.ListByState(ctx, "MA", domain.Window{Limit: 10})
	assert.ErrorIs(t, err, store.Err)
}

func TestCityService_ListByStateWindows(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	const n = 23
	for i := 0; i < n; i++ {
		_, err := services.Cities.Create(ctx, domain.City{ID: fmt.Sprintf("ma-%02d", i), Name: "X", State: "MA"})
		require.NoError(t, err)
	}
	_, err := services.Cities.Create(ctx, domain.City{ID: "ny-00", Name: "Y", State: "NY"})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for offset := int64(0); offset < n; offset += 10 {
		ids, total, err := services.Cities.ListByState(ctx, "MA", domain.Window{Offset: offset, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(n), total)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, n)

	ids, total, err := services.Cities.ListByState(ctx, "MA", domain.Window{Offset: 100, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, int64(n), total)
}

func TestCityService_ListByStateInvalidWindow(t *testing.T) {
	services, _ := newTestServices(t)

	_, _, err := services.Cities.ListByState(context.Background(), "MA", domain.Window{Offset: -1, Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, _, err = services.Cities.ListByState(context.Background(), "MA", domain.Window{Limit: 0})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestStateService(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	for i, state := range []string{"NY", "MA", "NY"} {
		_, err := services.Cities.Create(ctx, domain.City{ID: fmt.Sprint(i), Name: "X", State: state})
		require.NoError(t, err)
	}

	states, err := services.States.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MA", "NY"}, states)

	ok, err := services.States.Exists(ctx, "MA")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = services.States.Exists(ctx, "CA")
	require.NoError(t, err)
	assert.False(t, ok)
}
