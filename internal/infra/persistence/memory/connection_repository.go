package memory

import (
	"context"
	"slices"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
)

type connectionRepository struct {
	data *Dataset
}

// NewConnectionRepository returns a ConnectionRepository over the dataset.
func NewConnectionRepository(data *Dataset) repository.ConnectionRepository {
	return &connectionRepository{data: data}
}

func (repo *connectionRepository) RecordConnection(ctx context.Context, conn *entity.Connection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.data.write(func(s *state, now time.Time) error {
		s.nextConnID++
		conn.ID = s.nextConnID
		conn.CreatedAt = now

		stored := *conn
		s.conns = append(s.conns, &stored)

		return nil
	})
}

func (repo *connectionRepository) CountConnections(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var count int64
	repo.data.read(func(s *state) {
		count = int64(len(s.conns))
	})

	return count, nil
}

func (repo *connectionRepository) ListRecentConnections(ctx context.Context, limit int) ([]*entity.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conns := []*entity.Connection{}
	repo.data.read(func(s *state) {
		for i := len(s.conns) - 1; i >= 0 && len(conns) < limit; i-- {
			conn := *s.conns[i]
			conns = append(conns, &conn)
		}
	})

	return conns, nil
}

func (repo *connectionRepository) CountConnectionsByBucket(ctx context.Context, since time.Time, width time.Duration) ([]entity.ConnectionBucket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if width <= 0 {
		return []entity.ConnectionBucket{}, nil
	}

	counts := make(map[int64]int64)
	repo.data.read(func(s *state) {
		for _, conn := range s.conns {
			if conn.CreatedAt.Before(since) {
				continue
			}
			start := conn.CreatedAt.Truncate(width).Unix()
			counts[start]++
		}
	})

	buckets := make([]entity.ConnectionBucket, 0, len(counts))
	for start, count := range counts {
		buckets = append(buckets, entity.ConnectionBucket{Start: time.Unix(start, 0).UTC(), Count: count})
	}
	slices.SortFunc(buckets, func(a, b entity.ConnectionBucket) int {
		return a.Start.Compare(b.Start)
	})

	return buckets, nil
}

