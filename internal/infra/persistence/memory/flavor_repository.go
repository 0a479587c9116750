package memory

import (
	"cmp"
	"context"
	"slices"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
)

type flavorRepository struct {
	data *Dataset
}

// NewFlavorRepository returns a FlavorRepository over the dataset.
func NewFlavorRepository(data *Dataset) repository.FlavorRepository {
	return &flavorRepository{data: data}
}

func (repo *flavorRepository) ListFlavors(ctx context.Context) ([]*entity.Flavor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var flavors []*entity.Flavor
	repo.data.read(func(s *state) {
		flavors = make([]*entity.Flavor, 0, len(s.flavors))
		for _, flavor := range s.flavors {
			clone := *flavor
			flavors = append(flavors, &clone)
		}
	})
	slices.SortFunc(flavors, func(a, b *entity.Flavor) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return flavors, nil
}

func (repo *flavorRepository) FindFlavorByName(ctx context.Context, name string) (*entity.Flavor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Flavor
	repo.data.read(func(s *state) {
		if flavor, ok := s.flavors[name]; ok {
			clone := *flavor
			found = &clone
		}
	})
	if found == nil {
		return nil, repository.ErrFlavorNotFound
	}

	return found, nil
}
