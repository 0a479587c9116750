package main

import (
	"context"
	"log/slog"
	"os"

	"locator/internal/domain/entity"
	"locator/internal/infra/auth"
	"locator/internal/infra/locatorapi"
	logs "locator/internal/infra/log"
	"locator/internal/infra/persistence/memory"
	"locator/internal/mapsync"
	"locator/internal/usecase"
	"locator/internal/usecase/impl"

	"github.com/pkg/errors"
)

// backend bundles what the client-side components need from a data source.
type backend struct {
	fetcher mapsync.Fetcher
	writer  mapsync.Writer
	detail  func(ctx context.Context, storeID int64) (*entity.StoreDetail, error)
	logger  *slog.Logger
}

func openBackend(flags sourceFlags) (*backend, error) {
	logger := logs.NewCLI(*flags.verbosity)

	switch {
	case *flags.api != "":
		client, err := locatorapi.New(*flags.api,
			locatorapi.WithSessionID(*flags.session),
			locatorapi.WithLogger(logger),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create API client")
		}

		return &backend{
			fetcher: client,
			writer:  client,
			detail:  client.GetStore,
			logger:  logger,
		}, nil
	case *flags.stores != "":
		data, err := loadDataset(*flags.stores, *flags.flavors)
		if err != nil {
			return nil, err
		}

		return newMemoryBackend(data, *flags.session, logger), nil
	default:
		return nil, errors.New("either --api or --stores is required")
	}
}

func loadDataset(storesPath, flavorsPath string) (*memory.Dataset, error) {
	data := memory.NewDataset()

	storesFile, err := os.Open(storesPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stores file")
	}
	defer storesFile.Close()

	if _, err := data.LoadStores(storesFile); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", storesPath)
	}

	if flavorsPath == "" {
		return data, nil
	}

	flavorsFile, err := os.Open(flavorsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open flavors file")
	}
	defer flavorsFile.Close()

	if _, err := data.LoadFlavors(flavorsFile); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", flavorsPath)
	}

	return data, nil
}

func newMemoryBackend(data *memory.Dataset, sessionID string, logger *slog.Logger) *backend {
	storeRepo := memory.NewStoreRepository(data)

	aggregationUC := impl.NewAggregationService(impl.AggregationServiceParams{
		StoreRepo: storeRepo,
		Logger:    logger,
	})
	availabilityUC := impl.NewAvailabilityService(impl.AvailabilityServiceParams{
		TxManager: memory.NewTransactionManager(data),
		Logger:    logger,
	})
	storeUC := impl.NewStoreService(impl.StoreServiceParams{
		StoreRepo:        storeRepo,
		FlavorRepo:       memory.NewFlavorRepository(data),
		AvailabilityRepo: memory.NewAvailabilityRepository(data),
		Logger:           logger,
	})

	return &backend{
		fetcher: &aggregationFetcher{aggregationUC: aggregationUC},
		writer:  &availabilityWriter{availabilityUC: availabilityUC, sessionID: sessionID},
		detail:  storeUC.GetStoreDetail,
		logger:  logger,
	}
}

// aggregationFetcher serves controller fetches from the aggregation usecase.
type aggregationFetcher struct {
	aggregationUC usecase.AggregationUsecase
}

func (f *aggregationFetcher) Fetch(ctx context.Context, query entity.ViewportQuery) (*mapsync.Result, error) {
	result, err := f.aggregationUC.Aggregate(ctx, &usecase.AggregateInput{
		BBox:     query.BBox,
		Zoom:     query.Zoom,
		CellSize: query.CellSize,
		Flavors:  query.Flavors,
		Mode:     query.Mode,
	})
	if err != nil {
		return nil, err
	}

	stores := make([]entity.StoreAvailability, 0, len(result.Stores))
	for _, store := range result.Stores {
		if store != nil {
			stores = append(stores, *store)
		}
	}

	return &mapsync.Result{
		Mode:      result.Mode,
		CellSize:  result.CellSize,
		Clusters:  result.Clusters,
		Stores:    stores,
		Truncated: result.Truncated,
	}, nil
}

// availabilityWriter commits cycler writes through the availability usecase.
type availabilityWriter struct {
	availabilityUC usecase.AvailabilityUsecase
	sessionID      string
}

func (w *availabilityWriter) SetAvailability(ctx context.Context, storeID int64, flavorName string, status entity.Availability) (*entity.AvailabilityRecord, error) {
	input := &usecase.SetAvailabilityInput{
		StoreID:    storeID,
		FlavorName: flavorName,
		Available:  status,
	}
	if w.sessionID != "" {
		sessionID := w.sessionID
		input.SessionID = &sessionID
	}

	out, err := w.availabilityUC.SetAvailability(ctx, input)
	if err != nil {
		return nil, err
	}

	return &out.Record, nil
}

func hashAdminPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}

	hash, err := auth.NewBcryptHasher().Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}
