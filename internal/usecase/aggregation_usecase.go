package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// AggregateInput is one viewport aggregation request.
type AggregateInput struct {
	BBox     entity.BBox
	Zoom     *int
	CellSize *float64
	Flavors  []string
	Mode     entity.ViewMode
}

// AggregateResult carries either clusters or stores depending on Mode.
type AggregateResult struct {
	Mode      entity.ViewMode
	CellSize  float64
	Clusters  []entity.ClusterSummary
	Stores    []*entity.StoreAvailability
	Truncated bool // Points mode only: more stores matched than were returned.
}

// AggregationUsecase answers viewport queries for the map.
type AggregationUsecase interface {
	// Aggregate returns the clusters or stores inside the viewport that carry
	// every requested flavor as available.
	Aggregate(ctx context.Context, input *AggregateInput) (*AggregateResult, error)

	// ResolveCellSize maps a zoom level to the grid cell edge in degrees.
	ResolveCellSize(zoom int) float64

	// ClusterZoomThreshold is the highest zoom that is still shown as clusters.
	ClusterZoomThreshold() int
}
