// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strconv"
	"strings"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"
	"locator/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db, q: query.Use(db)}
}

// FindStoreByID retrieves a store by its ID from the primary.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id int64) (*entity.Store, error) {
	st := repo.q.StoreModel
	storeM, err := st.WithContext(ctx).
		WriteDB().
		Select(st.ID, st.Name, st.Address, st.Lat, st.Lon, st.CreatedAt, st.UpdatedAt).
		Where(st.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store by ID")
	}

	return toStoreDomain(storeM), nil
}

// FindStoresInBounds lists the qualifying stores of a viewport with their availability records.
func (repo *storeRepository) FindStoresInBounds(ctx context.Context, bbox entity.BBox, flavors []string, limit int) ([]*entity.StoreAvailability, error) {
	filter, args := viewportFilter(bbox, flavors)
	query := `
		SELECT s.id, s.name, s.address, s.lat, s.lon, s.created_at, s.updated_at
		FROM stores s
		WHERE ` + filter + `
		ORDER BY s.id
		LIMIT ?`
	args = append(args, limit)

	var storeModels []*model.StoreModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(query, args...).
		Scan(&storeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stores in bounds")
	}

	if len(storeModels) == 0 {
		return []*entity.StoreAvailability{}, nil
	}

	ids := make([]int64, 0, len(storeModels))
	for _, storeM := range storeModels {
		ids = append(ids, storeM.ID)
	}

	var recordModels []*model.StoreFlavorModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("store_id IN ?", ids).
		Order("store_id, flavor_name").
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load availability for stores")
	}

	byStore := make(map[int64][]entity.AvailabilityRecord, len(storeModels))
	for _, recordM := range recordModels {
		byStore[recordM.StoreID] = append(byStore[recordM.StoreID], toAvailabilityDomain(recordM))
	}

	result := make([]*entity.StoreAvailability, 0, len(storeModels))
	for _, storeM := range storeModels {
		result = append(result, &entity.StoreAvailability{
			Store:        *toStoreDomain(storeM),
			Availability: byStore[storeM.ID],
		})
	}

	return result, nil
}

// clusterRow is one grid cell returned by the grouping query.
type clusterRow struct {
	Lat      float64
	Lon      float64
	Count    int
	StoreIDs string
}

// ClusterStoresInBounds groups qualifying stores by floor(lat/size), floor(lon/size).
func (repo *storeRepository) ClusterStoresInBounds(ctx context.Context, bbox entity.BBox, cellSize float64, flavors []string) ([]entity.ClusterSummary, error) {
	query, args := clusterQuery(bbox, cellSize, flavors)

	var rows []clusterRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to cluster stores in bounds")
	}

	clusters := make([]entity.ClusterSummary, 0, len(rows))
	for _, row := range rows {
		ids, err := parseIDList(row.StoreIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse cluster members")
		}
		clusters = append(clusters, entity.ClusterSummary{
			Lat:      row.Lat,
			Lon:      row.Lon,
			Count:    row.Count,
			StoreIDs: ids,
		})
	}

	return clusters, nil
}

// clusterQuery computes the cell once in a subquery so GROUP BY and ORDER BY
// name the same columns. Postgres treats $n and $m as different expressions
// even when they carry the same value.
func clusterQuery(bbox entity.BBox, cellSize float64, flavors []string) (string, []any) {
	filter, filterArgs := viewportFilter(bbox, flavors)
	query := `
		SELECT AVG(c.lat) AS lat,
		       AVG(c.lon) AS lon,
		       COUNT(*) AS count,
		       string_agg(c.id::text, ',' ORDER BY c.id) AS store_ids
		FROM (
		  SELECT s.id, s.lat, s.lon,
		         FLOOR(s.lat / ?) AS cell_row,
		         FLOOR(s.lon / ?) AS cell_col
		  FROM stores s
		  WHERE ` + filter + `
		) c
		GROUP BY c.cell_row, c.cell_col
		ORDER BY c.cell_row, c.cell_col`

	args := make([]any, 0, len(filterArgs)+2)
	args = append(args, cellSize, cellSize)
	args = append(args, filterArgs...)

	return query, args
}

func parseIDList(s string) ([]int64, error) {
	if s == "" {
		return []int64{}, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid store id %q", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Lat:       data.Lat,
		Lon:       data.Lon,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
