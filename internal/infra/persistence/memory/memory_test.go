package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = entity.BBox{South: 48.80, West: 2.20, North: 48.95, East: 2.45}

func seedDataset(t *testing.T) *Dataset {
	t.Helper()

	data := NewDataset()
	_, err := data.LoadStores(strings.NewReader(`[
		{"name": "Glacier Bastille", "address": "1 rue de la Roquette", "lat": 48.853, "lon": 2.370},
		{"name": "Glacier Marais", "address": "12 rue des Archives", "lat": 48.858, "lon": 2.355},
		{"name": "Glacier Batignolles", "address": "3 rue Legendre", "lat": 48.885, "lon": 2.318},
		{"name": "Glacier Lyon", "address": "5 place Bellecour", "lat": 45.757, "lon": 4.832}
	]`))
	require.NoError(t, err)
	_, err = data.LoadFlavors(strings.NewReader(`[{"name": "Pistache"}, {"name": "Vanille"}, {"name": "Citron"}]`))
	require.NoError(t, err)

	return data
}

func setStatus(t *testing.T, data *Dataset, storeID int64, flavor string, status entity.Availability) {
	t.Helper()

	err := NewAvailabilityRepository(data).UpsertAvailability(context.Background(), &entity.AvailabilityRecord{
		StoreID:    storeID,
		FlavorName: flavor,
		Available:  status,
	})
	require.NoError(t, err)
}

func TestLoadStores_RejectsInvalidCoordinates(t *testing.T) {
	data := NewDataset()

	n, err := data.LoadStores(strings.NewReader(`[{"name": "ok", "lat": 1, "lon": 1}, {"name": "bad", "lat": 91, "lon": 0}]`))

	require.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestStoreRepository_FlavorIntersection(t *testing.T) {
	data := seedDataset(t)
	setStatus(t, data, 1, "Pistache", entity.AvailabilityAvailable)
	setStatus(t, data, 1, "Vanille", entity.AvailabilityAvailable)
	setStatus(t, data, 2, "Pistache", entity.AvailabilityAvailable)
	setStatus(t, data, 2, "Vanille", entity.AvailabilityUnavailable)
	setStatus(t, data, 3, "Pistache", entity.AvailabilityAvailable)

	repo := NewStoreRepository(data)
	stores, err := repo.FindStoresInBounds(context.Background(), paris, []string{"Pistache", "Vanille"}, 100)

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, int64(1), stores[0].Store.ID)
	assert.Len(t, stores[0].Availability, 2)

	stores, err = repo.FindStoresInBounds(context.Background(), paris, []string{"Pistache"}, 100)
	require.NoError(t, err)
	assert.Len(t, stores, 3)
}

func TestStoreRepository_NoFlavorFilterReturnsAllInBounds(t *testing.T) {
	repo := NewStoreRepository(seedDataset(t))

	stores, err := repo.FindStoresInBounds(context.Background(), paris, nil, 100)
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{stores[0].Store.ID, stores[1].Store.ID, stores[2].Store.ID})

	limited, err := repo.FindStoresInBounds(context.Background(), paris, nil, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStoreRepository_ClusterStoresInBounds(t *testing.T) {
	repo := NewStoreRepository(seedDataset(t))
	world := entity.BBox{South: -90, West: -180, North: 90, East: 180}

	clusters, err := repo.ClusterStoresInBounds(context.Background(), world, 1.0, nil)

	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, 1, clusters[0].Count)
	assert.Equal(t, []int64{4}, clusters[0].StoreIDs)
	assert.Equal(t, 3, clusters[1].Count)
	assert.Equal(t, []int64{1, 2, 3}, clusters[1].StoreIDs)
	assert.InDelta(t, (48.853+48.858+48.885)/3, clusters[1].Lat, 1e-9)
}

func TestStoreRepository_FindStoreByID(t *testing.T) {
	repo := NewStoreRepository(seedDataset(t))

	store, err := repo.FindStoreByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Glacier Marais", store.Name)

	_, err = repo.FindStoreByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestAvailabilityRepository_UpsertOverwrites(t *testing.T) {
	data := seedDataset(t)
	repo := NewAvailabilityRepository(data)

	setStatus(t, data, 1, "Citron", entity.AvailabilityAvailable)
	setStatus(t, data, 1, "Citron", entity.AvailabilityUnavailable)

	records, err := repo.FindAvailabilityByStore(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.AvailabilityUnavailable, records[0].Available)
}

func TestAvailabilityRepository_DanglingReferences(t *testing.T) {
	repo := NewAvailabilityRepository(seedDataset(t))
	ctx := context.Background()

	err := repo.UpsertAvailability(ctx, &entity.AvailabilityRecord{StoreID: 42, FlavorName: "Pistache", Available: 1})
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)

	err = repo.UpsertAvailability(ctx, &entity.AvailabilityRecord{StoreID: 1, FlavorName: "Durian", Available: 1})
	assert.ErrorIs(t, err, repository.ErrFlavorNotFound)

	err = repo.UpsertAvailability(ctx, &entity.AvailabilityRecord{StoreID: 1, FlavorName: "Pistache", Available: 7})
	assert.Error(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	data := seedDataset(t)
	tm := NewTransactionManager(data)
	boom := errors.New("boom")

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewAvailabilityRepository().UpsertAvailability(context.Background(), &entity.AvailabilityRecord{
			StoreID: 1, FlavorName: "Pistache", Available: entity.AvailabilityAvailable,
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	records, err := NewAvailabilityRepository(data).FindAvailabilityByStore(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	data := seedDataset(t)
	tm := NewTransactionManager(data)

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewAvailabilityRepository().UpsertAvailability(context.Background(), &entity.AvailabilityRecord{
			StoreID: 3, FlavorName: "Vanille", Available: entity.AvailabilityAvailable,
		}); err != nil {
			return err
		}

		return f.NewUpdateLogRepository().AppendUpdateLog(context.Background(), &entity.UpdateLogEntry{
			StoreID: 3, FlavorName: "Vanille", Availability: entity.AvailabilityAvailable,
		})
	})
	require.NoError(t, err)

	logs, err := NewUpdateLogRepository(data).ListRecentUpdateLogs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Glacier Batignolles", logs[0].StoreName)
}

func TestConnectionRepository_Buckets(t *testing.T) {
	data := NewDataset()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	offsets := []time.Duration{0, 2 * time.Minute, 7 * time.Minute, 31 * time.Minute}
	i := 0
	data.SetClock(func() time.Time {
		now := base.Add(offsets[i])
		i++

		return now
	})

	repo := NewConnectionRepository(data)
	ctx := context.Background()
	for range offsets {
		require.NoError(t, repo.RecordConnection(ctx, &entity.Connection{SessionID: "s"}))
	}

	total, err := repo.CountConnections(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	buckets, err := repo.CountConnectionsByBucket(ctx, base, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []entity.ConnectionBucket{
		{Start: base, Count: 2},
		{Start: base.Add(5 * time.Minute), Count: 1},
		{Start: base.Add(30 * time.Minute), Count: 1},
	}, buckets)

	recent, err := repo.ListRecentConnections(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(4), recent[0].ID)
}
