package memory

import (
	"cmp"
	"context"
	"slices"

	"locator/internal/domain/entity"
	"locator/internal/domain/grid"
	"locator/internal/domain/repository"
)

type storeRepository struct {
	data *Dataset
}

// NewStoreRepository returns a StoreRepository over the dataset.
func NewStoreRepository(data *Dataset) repository.StoreRepository {
	return &storeRepository{data: data}
}

func (repo *storeRepository) FindStoreByID(ctx context.Context, id int64) (*entity.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Store
	repo.data.read(func(s *state) {
		if store, ok := s.stores[id]; ok {
			clone := *store
			found = &clone
		}
	})
	if found == nil {
		return nil, repository.ErrStoreNotFound
	}

	return found, nil
}

func (repo *storeRepository) FindStoresInBounds(ctx context.Context, bbox entity.BBox, flavors []string, limit int) ([]*entity.StoreAvailability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := []*entity.StoreAvailability{}
	repo.data.read(func(s *state) {
		for _, p := range qualifying(s, bbox, flavors) {
			if limit >= 0 && len(result) >= limit {
				break
			}
			result = append(result, &entity.StoreAvailability{
				Store:        *s.stores[p.ID],
				Availability: recordsOf(s, p.ID),
			})
		}
	})

	return result, nil
}

func (repo *storeRepository) ClusterStoresInBounds(ctx context.Context, bbox entity.BBox, cellSize float64, flavors []string) ([]entity.ClusterSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var clusters []entity.ClusterSummary
	repo.data.read(func(s *state) {
		clusters = grid.Cluster(qualifying(s, bbox, flavors), cellSize)
	})

	return clusters, nil
}

// qualifying returns the stores inside bbox carrying every flavor as
// available, ordered by id.
func qualifying(s *state, bbox entity.BBox, flavors []string) []grid.Point {
	candidates := s.index.InBounds(bbox)
	out := make([]grid.Point, 0, len(candidates))
	for _, p := range candidates {
		if len(flavors) > 0 && !entity.SatisfiesAll(statusesOf(s, p.ID, flavors), flavors) {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Point) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

func statusesOf(s *state, storeID int64, flavors []string) map[string]entity.Availability {
	statuses := make(map[string]entity.Availability, len(flavors))
	for _, name := range flavors {
		if rec, ok := s.records[recordKey{storeID: storeID, flavor: name}]; ok {
			statuses[name] = rec.Available
		}
	}

	return statuses
}

func recordsOf(s *state, storeID int64) []entity.AvailabilityRecord {
	var records []entity.AvailabilityRecord
	for key, rec := range s.records {
		if key.storeID == storeID {
			records = append(records, rec)
		}
	}
	slices.SortFunc(records, func(a, b entity.AvailabilityRecord) int {
		return cmp.Compare(a.FlavorName, b.FlavorName)
	})

	return records
}
