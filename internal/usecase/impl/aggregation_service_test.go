package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var parisBBox = entity.BBox{South: 48.80, West: 2.25, North: 48.92, East: 2.42}

func createTestAggregationService(t *testing.T, maxStores int) (usecase.AggregationUsecase, *mockRepo.MockStoreRepository) {
	storeRepo := mockRepo.NewMockStoreRepository(t)

	srv := NewAggregationService(AggregationServiceParams{
		StoreRepo: storeRepo,
		Config: &config.Config{Aggregation: &config.AggregationConfig{
			ClusterZoomThreshold: 13,
			MaxStores:            maxStores,
			QueryTimeout:         time.Second,
		}},
		Logger: discardLogger(),
	})

	return srv, storeRepo
}

func TestAggregationService_Aggregate_InvalidViewport(t *testing.T) {
	srv, _ := createTestAggregationService(t, 10)

	tests := []struct {
		name string
		bbox entity.BBox
	}{
		{name: "south above north", bbox: entity.BBox{South: 49, West: 2, North: 48, East: 3}},
		{name: "latitude out of range", bbox: entity.BBox{South: -91, West: 2, North: 48, East: 3}},
		{name: "longitude out of range", bbox: entity.BBox{South: 40, West: 2, North: 48, East: 181}},
		{name: "antimeridian crossing", bbox: entity.BBox{South: -10, West: 170, North: 10, East: -170}},
		{name: "NaN edge", bbox: entity.BBox{South: math.NaN(), West: 2, North: 48, East: 3}},
		{name: "infinite edge", bbox: entity.BBox{South: 40, West: math.Inf(-1), North: 48, East: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: tt.bbox, Zoom: ptr(10)})

			assert.Nil(t, result)
			requireAppError(t, err, "INVALID_VIEWPORT")
		})
	}
}

func TestAggregationService_Aggregate_ClustersFromZoom(t *testing.T) {
	srv, storeRepo := createTestAggregationService(t, 10)
	clusters := []entity.ClusterSummary{{Lat: 48.88, Lon: 2.35, Count: 3, StoreIDs: []int64{1, 2, 3}}}

	storeRepo.EXPECT().
		ClusterStoresInBounds(mock.Anything, parisBBox, 0.12, []string{"Pistache", "Vanille"}).
		Return(clusters, nil)

	result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{
		BBox:    parisBBox,
		Zoom:    ptr(8),
		Flavors: []string{"Pistache", " Vanille ", "Pistache", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ModeClusters, result.Mode)
	assert.InDelta(t, 0.12, result.CellSize, 1e-12)
	assert.Equal(t, clusters, result.Clusters)
	assert.Nil(t, result.Stores)
}

func TestAggregationService_Aggregate_ExplicitCellSizeOverridesZoom(t *testing.T) {
	srv, storeRepo := createTestAggregationService(t, 10)

	storeRepo.EXPECT().
		ClusterStoresInBounds(mock.Anything, parisBBox, 0.05, []string(nil)).
		Return([]entity.ClusterSummary{}, nil)

	result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{
		BBox:     parisBBox,
		Zoom:     ptr(16),
		CellSize: ptr(0.05),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ModeClusters, result.Mode)
	assert.Empty(t, result.Clusters)
}

func TestAggregationService_Aggregate_ClustersWithoutScale(t *testing.T) {
	srv, _ := createTestAggregationService(t, 10)

	_, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: parisBBox, Mode: entity.ModeClusters})

	requireAppError(t, err, "INVALID_VIEWPORT")
}

func TestAggregationService_Aggregate_PointsAboveThreshold(t *testing.T) {
	srv, storeRepo := createTestAggregationService(t, 2)
	stores := []*entity.StoreAvailability{
		{Store: entity.Store{ID: 1}},
		{Store: entity.Store{ID: 2}},
	}

	storeRepo.EXPECT().FindStoresInBounds(mock.Anything, parisBBox, []string(nil), 3).Return(stores, nil)

	result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: parisBBox, Zoom: ptr(15)})

	require.NoError(t, err)
	assert.Equal(t, entity.ModePoints, result.Mode)
	assert.Len(t, result.Stores, 2)
	assert.False(t, result.Truncated)
	assert.InDelta(t, 0.001, result.CellSize, 1e-12)
}

func TestAggregationService_Aggregate_PointsTruncated(t *testing.T) {
	srv, storeRepo := createTestAggregationService(t, 2)
	stores := []*entity.StoreAvailability{
		{Store: entity.Store{ID: 1}},
		{Store: entity.Store{ID: 2}},
		{Store: entity.Store{ID: 3}},
	}

	storeRepo.EXPECT().FindStoresInBounds(mock.Anything, parisBBox, []string(nil), 3).Return(stores, nil)

	result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: parisBBox, Mode: entity.ModePoints})

	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Len(t, result.Stores, 2)
}

func TestAggregationService_Aggregate_StorageFailure(t *testing.T) {
	srv, storeRepo := createTestAggregationService(t, 10)

	storeRepo.EXPECT().
		ClusterStoresInBounds(mock.Anything, parisBBox, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	result, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: parisBBox, Zoom: ptr(5)})

	assert.Nil(t, result)
	requireAppError(t, err, "QUERY_FAILED")
}

func TestAggregationService_Aggregate_InvalidMode(t *testing.T) {
	srv, _ := createTestAggregationService(t, 10)

	_, err := srv.Aggregate(context.Background(), &usecase.AggregateInput{BBox: parisBBox, Mode: "heatmap"})

	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestAggregationService_ResolveCellSize(t *testing.T) {
	srv, _ := createTestAggregationService(t, 10)

	assert.InDelta(t, 0.0005, srv.ResolveCellSize(18), 1e-12)
	assert.InDelta(t, 0.12, srv.ResolveCellSize(8), 1e-12)
	assert.Equal(t, 13, srv.ClusterZoomThreshold())
}
