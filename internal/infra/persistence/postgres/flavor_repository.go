package postgres

import (
	"context"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"
	"locator/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type flavorRepository struct {
	q *query.Query
}

// NewFlavorRepository is the constructor for flavorRepository.
func NewFlavorRepository(db *gorm.DB) repository.FlavorRepository {
	return &flavorRepository{q: query.Use(db)}
}

// ListFlavors returns the catalog ordered by name.
func (repo *flavorRepository) ListFlavors(ctx context.Context) ([]*entity.Flavor, error) {
	f := repo.q.FlavorModel
	flavorModels, err := f.WithContext(ctx).
		ReadDB().
		Order(f.Name).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list flavors")
	}

	flavors := make([]*entity.Flavor, 0, len(flavorModels))
	for _, flavorM := range flavorModels {
		flavors = append(flavors, toFlavorDomain(flavorM))
	}

	return flavors, nil
}

// FindFlavorByName retrieves a flavor by name.
func (repo *flavorRepository) FindFlavorByName(ctx context.Context, name string) (*entity.Flavor, error) {
	f := repo.q.FlavorModel
	flavorM, err := f.WithContext(ctx).
		Where(f.Name.Eq(name)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlavorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find flavor by name")
	}

	return toFlavorDomain(flavorM), nil
}

func toFlavorDomain(data *model.FlavorModel) *entity.Flavor {
	return &entity.Flavor{
		Name:  data.Name,
		Image: data.Image,
	}
}
