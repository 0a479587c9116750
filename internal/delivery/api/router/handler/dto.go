package handler

import (
	"time"

	"locator/internal/domain/entity"
	"locator/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// StoreResponse is the wire shape of a store.
type StoreResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// AvailabilityResponse is one (flavor, status) pair of a store.
type AvailabilityResponse struct {
	FlavorName string              `json:"flavor_name"`
	Available  entity.Availability `json:"available"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// StoreAvailabilityResponse is a store in a points result.
type StoreAvailabilityResponse struct {
	StoreResponse
	Availability []AvailabilityResponse `json:"availability"`
}

// AggregateResponse is the body of GET /stores-in-bounds.
type AggregateResponse struct {
	Mode      entity.ViewMode             `json:"mode"`
	CellSize  float64                     `json:"cell_size,omitempty"`
	Clusters  []entity.ClusterSummary     `json:"clusters,omitempty"`
	Stores    []StoreAvailabilityResponse `json:"stores,omitempty"`
	Truncated bool                        `json:"truncated"`
}

// StoreDetailResponse is the body of GET /stores/:id.
type StoreDetailResponse struct {
	StoreResponse
	Flavors []entity.FlavorAvailability `json:"flavors"`
}

// FlavorResponse is a catalog entry.
type FlavorResponse struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// UpdateLogResponse is one audit row.
type UpdateLogResponse struct {
	ID           int64               `json:"id"`
	StoreID      int64               `json:"store_id"`
	StoreName    string              `json:"store_name"`
	FlavorName   string              `json:"flavor_name"`
	Availability entity.Availability `json:"availability"`
	SessionID    *string             `json:"session_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ConnectionResponse is one recorded visit.
type ConnectionResponse struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Lat:     s.Lat,
		Lon:     s.Lon,
	}
}

func toAvailabilityResponses(records []entity.AvailabilityRecord) []AvailabilityResponse {
	out := make([]AvailabilityResponse, 0, len(records))
	for _, r := range records {
		out = append(out, AvailabilityResponse{
			FlavorName: r.FlavorName,
			Available:  r.Available,
			UpdatedAt:  r.UpdatedAt,
		})
	}

	return out
}

func toAggregateResponse(result *usecase.AggregateResult) *AggregateResponse {
	resp := &AggregateResponse{
		Mode:      result.Mode,
		CellSize:  result.CellSize,
		Truncated: result.Truncated,
	}

	if result.Mode == entity.ModeClusters {
		resp.Clusters = result.Clusters
		if resp.Clusters == nil {
			resp.Clusters = []entity.ClusterSummary{}
		}

		return resp
	}

	resp.Stores = make([]StoreAvailabilityResponse, 0, len(result.Stores))
	for _, sa := range result.Stores {
		resp.Stores = append(resp.Stores, StoreAvailabilityResponse{
			StoreResponse: toStoreResponse(&sa.Store),
			Availability:  toAvailabilityResponses(sa.Availability),
		})
	}

	return resp
}

// toFeatureCollection renders clusters or stores as GeoJSON points.
func toFeatureCollection(result *usecase.AggregateResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if result.Mode == entity.ModeClusters {
		for _, cluster := range result.Clusters {
			f := geojson.NewFeature(cluster.Point())
			f.Properties["count"] = cluster.Count
			f.Properties["store_ids"] = cluster.StoreIDs
			fc.Append(f)
		}

		return fc
	}

	for _, sa := range result.Stores {
		f := geojson.NewFeature(sa.Store.Point())
		f.ID = sa.Store.ID
		f.Properties["name"] = sa.Store.Name
		f.Properties["address"] = sa.Store.Address
		f.Properties["availability"] = toAvailabilityResponses(sa.Availability)
		fc.Append(f)
	}

	return fc
}
