package impl

import (
	"context"
	"log/slog"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAdminListLimit = 100
	maxAdminListLimit     = 1000
)

type adminService struct {
	updateLogRepo  repository.UpdateLogRepository
	connectionRepo repository.ConnectionRepository
	hasher         service.PasswordHasher
	passwordHash   string
	now            func() time.Time
	logger         *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UpdateLogRepo  repository.UpdateLogRepository
	ConnectionRepo repository.ConnectionRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		updateLogRepo:  params.UpdateLogRepo,
		connectionRepo: params.ConnectionRepo,
		hasher:         params.Hasher,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.Admin != nil {
		srv.passwordHash = params.Config.Admin.PasswordHash
	}

	return srv
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate compares the password against the configured bcrypt hash.
func (srv *adminService) Authenticate(password string) error {
	if srv.passwordHash == "" {
		return domainerrors.ErrAdminDisabled
	}
	if password == "" || !srv.hasher.Check(password, srv.passwordHash) {
		return domainerrors.ErrAdminUnauthorized
	}

	return nil
}

// ListUpdateLogs returns the newest update log entries.
func (srv *adminService) ListUpdateLogs(ctx context.Context, limit int) ([]*entity.UpdateLogEntry, error) {
	entries, err := srv.updateLogRepo.ListRecentUpdateLogs(ctx, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list update logs")
	}

	return entries, nil
}

// GetConnections returns the visit total with the newest visits.
func (srv *adminService) GetConnections(ctx context.Context, limit int) (*usecase.ConnectionsOverview, error) {
	total, err := srv.connectionRepo.CountConnections(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count connections")
	}

	recent, err := srv.connectionRepo.ListRecentConnections(ctx, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return &usecase.ConnectionsOverview{Total: total, Recent: recent}, nil
}

// GetConnectionStats returns a complete series of buckets ending at the
// current bucket, with zero counts where nobody visited.
func (srv *adminService) GetConnectionStats(ctx context.Context, interval entity.StatsInterval) (*usecase.ConnectionStats, error) {
	width, buckets, ok := interval.Bucket()
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("interval must be one of 5m, 1h, 1d")
	}

	current := srv.now().Truncate(width)
	since := current.Add(-time.Duration(buckets-1) * width)

	counted, err := srv.connectionRepo.CountConnectionsByBucket(ctx, since, width)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count connections by bucket")
	}

	byStart := make(map[int64]int64, len(counted))
	for _, bucket := range counted {
		byStart[bucket.Start.Unix()] = bucket.Count
	}

	series := make([]entity.ConnectionBucket, 0, buckets)
	for i := range buckets {
		start := since.Add(time.Duration(i) * width)
		series = append(series, entity.ConnectionBucket{Start: start, Count: byStart[start.Unix()]})
	}

	srv.log(ctx).Debug("Connection stats computed", slog.String("interval", string(interval)), slog.Int("buckets", len(series)))

	return &usecase.ConnectionStats{Interval: interval, Since: since, Buckets: series}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultAdminListLimit
	}

	return min(limit, maxAdminListLimit)
}
