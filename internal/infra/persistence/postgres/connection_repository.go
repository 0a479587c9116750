package postgres

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"
	"locator/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type connectionRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db, q: query.Use(db)}
}

// RecordConnection stores one visit.
func (repo *connectionRepository) RecordConnection(ctx context.Context, conn *entity.Connection) error {
	connM := &model.ConnectionModel{
		SessionID: conn.SessionID,
		UserAgent: conn.UserAgent,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.q.ConnectionModel.WithContext(ctx).Create(connM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record connection")
	}

	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt

	return nil
}

// CountConnections returns the number of recorded visits.
func (repo *connectionRepository) CountConnections(ctx context.Context) (int64, error) {
	count, err := repo.q.ConnectionModel.WithContext(ctx).ReadDB().Count()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count connections")
	}

	return count, nil
}

// ListRecentConnections returns the newest visits first.
func (repo *connectionRepository) ListRecentConnections(ctx context.Context, limit int) ([]*entity.Connection, error) {
	c := repo.q.ConnectionModel
	connModels, err := c.WithContext(ctx).
		ReadDB().
		Order(c.CreatedAt.Desc(), c.ID.Desc()).
		Limit(limit).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list connections")
	}

	conns := make([]*entity.Connection, 0, len(connModels))
	for _, connM := range connModels {
		conns = append(conns, &entity.Connection{
			ID:        connM.ID,
			SessionID: connM.SessionID,
			UserAgent: connM.UserAgent,
			CreatedAt: connM.CreatedAt,
		})
	}

	return conns, nil
}

type bucketRow struct {
	BucketStart time.Time
	Count       int64
}

// CountConnectionsByBucket groups visits into epoch-aligned buckets.
func (repo *connectionRepository) CountConnectionsByBucket(ctx context.Context, since time.Time, width time.Duration) ([]entity.ConnectionBucket, error) {
	secs := int64(width / time.Second)
	if secs <= 0 {
		return []entity.ConnectionBucket{}, nil
	}

	var rows []bucketRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(`
			SELECT to_timestamp(FLOOR(EXTRACT(EPOCH FROM created_at) / ?) * ?) AS bucket_start,
			       COUNT(*) AS count
			FROM connections
			WHERE created_at >= ?
			GROUP BY bucket_start
			ORDER BY bucket_start`, secs, secs, since.UTC()).
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count connections by bucket")
	}

	buckets := make([]entity.ConnectionBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, entity.ConnectionBucket{
			Start: row.BucketStart.UTC(),
			Count: row.Count,
		})
	}

	return buckets, nil
}
