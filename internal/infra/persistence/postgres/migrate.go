package postgres

import (
	"context"

	"locator/internal/errors"
	"locator/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates the PostGIS extension and the locator tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}

	if err := tx.AutoMigrate(
		&model.StoreModel{},
		&model.FlavorModel{},
		&model.StoreFlavorModel{},
		&model.UpdateLogModel{},
		&model.ConnectionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
