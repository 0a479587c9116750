// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/grid"
	"locator/internal/domain/repository"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type aggregationService struct {
	storeRepo            repository.StoreRepository
	clusterZoomThreshold int
	maxStores            int
	queryTimeout         time.Duration
	logger               *slog.Logger
}

// AggregationServiceParams holds dependencies for AggregationService, injected by Fx.
type AggregationServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAggregationService creates a new viewport aggregation service instance
func NewAggregationService(params AggregationServiceParams) usecase.AggregationUsecase {
	srv := &aggregationService{
		storeRepo:            params.StoreRepo,
		clusterZoomThreshold: 13,
		maxStores:            2000,
		queryTimeout:         5 * time.Second,
		logger:               params.Logger,
	}
	if params.Config != nil && params.Config.Aggregation != nil {
		srv.clusterZoomThreshold = params.Config.Aggregation.ClusterZoomThreshold
		srv.maxStores = params.Config.Aggregation.MaxStores
		srv.queryTimeout = params.Config.Aggregation.QueryTimeout
	}

	return srv
}

func (srv *aggregationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveCellSize maps a zoom level to the grid cell edge in degrees.
func (srv *aggregationService) ResolveCellSize(zoom int) float64 {
	return grid.ResolveCellSize(zoom)
}

// ClusterZoomThreshold returns the highest clustered zoom.
func (srv *aggregationService) ClusterZoomThreshold() int {
	return srv.clusterZoomThreshold
}

// Aggregate validates the viewport and runs the clustering or points query.
func (srv *aggregationService) Aggregate(ctx context.Context, input *usecase.AggregateInput) (*usecase.AggregateResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidViewport.WithDetails("missing viewport")
	}
	if !input.BBox.Valid() {
		return nil, domainerrors.ErrInvalidViewport.WithDetails("bounds must be finite WGS84 coordinates with south <= north and west <= east")
	}

	mode, err := srv.resolveMode(input)
	if err != nil {
		return nil, err
	}
	flavors := entity.NormalizeFlavors(input.Flavors)

	if srv.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.queryTimeout)
		defer cancel()
	}

	if mode == entity.ModeClusters {
		return srv.clusters(ctx, input, flavors)
	}

	return srv.points(ctx, input, flavors)
}

// resolveMode applies the request mode rule: an explicit mode wins, then a
// cell size implies clusters, then the zoom is compared to the threshold.
func (srv *aggregationService) resolveMode(input *usecase.AggregateInput) (entity.ViewMode, error) {
	switch {
	case input.Mode != "":
		if !input.Mode.Valid() {
			return "", domainerrors.ErrValidationFailed.WithDetails("mode must be clusters or points")
		}

		return input.Mode, nil
	case input.CellSize != nil:
		return entity.ModeClusters, nil
	case input.Zoom != nil && *input.Zoom <= srv.clusterZoomThreshold:
		return entity.ModeClusters, nil
	default:
		return entity.ModePoints, nil
	}
}

func (srv *aggregationService) clusters(ctx context.Context, input *usecase.AggregateInput, flavors []string) (*usecase.AggregateResult, error) {
	cellSize, ok := grid.Resolve(input.Zoom, input.CellSize)
	if !ok {
		return nil, domainerrors.ErrInvalidViewport.WithDetails("zoom or a positive cellSize is required for clusters")
	}

	clusters, err := srv.storeRepo.ClusterStoresInBounds(ctx, input.BBox, cellSize, flavors)
	if err != nil {
		srv.log(ctx).Error("Failed to cluster stores",
			slog.Any("bbox", input.BBox),
			slog.Float64("cellSize", cellSize),
			slog.Any("flavors", flavors),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrQueryFailed, "failed to cluster stores in bounds")
	}

	srv.log(ctx).Debug("Viewport clustered",
		slog.Float64("cellSize", cellSize),
		slog.Int("clusters", len(clusters)),
		slog.Int("flavors", len(flavors)),
	)

	return &usecase.AggregateResult{
		Mode:     entity.ModeClusters,
		CellSize: cellSize,
		Clusters: clusters,
	}, nil
}

func (srv *aggregationService) points(ctx context.Context, input *usecase.AggregateInput, flavors []string) (*usecase.AggregateResult, error) {
	stores, err := srv.storeRepo.FindStoresInBounds(ctx, input.BBox, flavors, srv.maxStores+1)
	if err != nil {
		srv.log(ctx).Error("Failed to find stores in bounds",
			slog.Any("bbox", input.BBox),
			slog.Any("flavors", flavors),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrQueryFailed, "failed to find stores in bounds")
	}

	truncated := len(stores) > srv.maxStores
	if truncated {
		stores = stores[:srv.maxStores]
		srv.log(ctx).Warn("Viewport store list truncated", slog.Int("maxStores", srv.maxStores))
	}

	result := &usecase.AggregateResult{
		Mode:      entity.ModePoints,
		Stores:    stores,
		Truncated: truncated,
	}
	if cellSize, ok := grid.Resolve(input.Zoom, input.CellSize); ok {
		result.CellSize = cellSize
	}

	return result, nil
}
