package main

import (
	"context"

	"locator/config"
	logs "locator/internal/infra/log"
	"locator/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// runMigrate boots the database module only, applies the schema and stops.
func runMigrate(ctx context.Context) error {
	var migrateErr error

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(db *gorm.DB) {
			migrateErr = postgres.Migrate(ctx, db)
		}),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	if migrateErr != nil {
		return errors.Wrap(migrateErr, "migration failed")
	}

	return nil
}
