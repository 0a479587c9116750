package postgres

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	fkStoreFlavorsStore  = "fk_store_flavors_store"
	fkStoreFlavorsFlavor = "fk_store_flavors_flavor"
)

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository is the constructor for availabilityRepository.
func NewAvailabilityRepository(db *gorm.DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

// UpsertAvailability writes the (store, flavor) record, replacing any previous status.
func (repo *availabilityRepository) UpsertAvailability(ctx context.Context, record *entity.AvailabilityRecord) error {
	recordM := &model.StoreFlavorModel{
		StoreID:    record.StoreID,
		FlavorName: record.FlavorName,
		Available:  int16(record.Available),
		UpdatedAt:  time.Now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}, {Name: "flavor_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"available", "updated_at"}),
		}).
		Omit("Store", "Flavor").
		Create(recordM).Error
	if err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			if pgConstraintName(err) == fkStoreFlavorsFlavor {
				return repository.ErrFlavorNotFound
			}

			return repository.ErrStoreNotFound
		case isCheckConstraintViolation(err):
			return domainerrors.ErrInvalidAvailability.WrapMessage("availability out of range")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing availability information")
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrWriteConflict.WrapMessage("concurrent availability write")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert availability")
	}

	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindAvailabilityByStore returns every record of a store ordered by flavor name.
func (repo *availabilityRepository) FindAvailabilityByStore(ctx context.Context, storeID int64) ([]entity.AvailabilityRecord, error) {
	var recordModels []*model.StoreFlavorModel
	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("flavor_name").
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find availability by store")
	}

	records := make([]entity.AvailabilityRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toAvailabilityDomain(recordM))
	}

	return records, nil
}

func toAvailabilityDomain(data *model.StoreFlavorModel) entity.AvailabilityRecord {
	return entity.AvailabilityRecord{
		StoreID:    data.StoreID,
		FlavorName: data.FlavorName,
		Available:  entity.Availability(data.Available),
		UpdatedAt:  data.UpdatedAt,
	}
}
