package impl

import (
	"context"
	"testing"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"
	mockSvc "locator/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T, passwordHash string) (
	*adminService,
	*mockRepo.MockUpdateLogRepository,
	*mockRepo.MockConnectionRepository,
	*mockSvc.MockPasswordHasher,
) {
	updateLogRepo := mockRepo.NewMockUpdateLogRepository(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewAdminService(AdminServiceParams{
		UpdateLogRepo:  updateLogRepo,
		ConnectionRepo: connectionRepo,
		Hasher:         hasher,
		Config:         &config.Config{Admin: &config.AdminConfig{PasswordHash: passwordHash}},
		Logger:         discardLogger(),
	})

	return srv.(*adminService), updateLogRepo, connectionRepo, hasher
}

func TestAdminService_Authenticate(t *testing.T) {
	srv, _, _, hasher := createTestAdminService(t, "$2a$hash")

	hasher.EXPECT().Check("secret", "$2a$hash").Return(true)
	hasher.EXPECT().Check("wrong", "$2a$hash").Return(false)

	require.NoError(t, srv.Authenticate("secret"))
	requireAppError(t, srv.Authenticate("wrong"), "ADMIN_UNAUTHORIZED")
	requireAppError(t, srv.Authenticate(""), "ADMIN_UNAUTHORIZED")
}

func TestAdminService_Authenticate_Disabled(t *testing.T) {
	srv, _, _, _ := createTestAdminService(t, "")

	requireAppError(t, srv.Authenticate("anything"), "ADMIN_DISABLED")
}

func TestAdminService_ListUpdateLogs_ClampsLimit(t *testing.T) {
	srv, updateLogRepo, _, _ := createTestAdminService(t, "x")
	ctx := context.Background()

	updateLogRepo.EXPECT().ListRecentUpdateLogs(ctx, defaultAdminListLimit).Return([]*entity.UpdateLogEntry{}, nil).Once()
	updateLogRepo.EXPECT().ListRecentUpdateLogs(ctx, maxAdminListLimit).Return([]*entity.UpdateLogEntry{}, nil).Once()

	_, err := srv.ListUpdateLogs(ctx, 0)
	require.NoError(t, err)
	_, err = srv.ListUpdateLogs(ctx, 50000)
	require.NoError(t, err)
}

func TestAdminService_GetConnections(t *testing.T) {
	srv, _, connectionRepo, _ := createTestAdminService(t, "x")
	ctx := context.Background()
	recent := []*entity.Connection{{ID: 9, SessionID: "abc"}}

	connectionRepo.EXPECT().CountConnections(ctx).Return(int64(42), nil)
	connectionRepo.EXPECT().ListRecentConnections(ctx, 20).Return(recent, nil)

	overview, err := srv.GetConnections(ctx, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(42), overview.Total)
	assert.Equal(t, recent, overview.Recent)
}

func TestAdminService_GetConnectionStats_ZeroFills(t *testing.T) {
	srv, _, connectionRepo, _ := createTestAdminService(t, "x")
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	srv.now = func() time.Time { return now }

	current := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	since := current.Add(-167 * time.Hour)

	connectionRepo.EXPECT().
		CountConnectionsByBucket(ctx, since, time.Hour).
		Return([]entity.ConnectionBucket{
			{Start: since, Count: 4},
			{Start: current, Count: 7},
		}, nil)

	stats, err := srv.GetConnectionStats(ctx, entity.StatsInterval1h)

	require.NoError(t, err)
	require.Len(t, stats.Buckets, 168)
	assert.Equal(t, since, stats.Since)
	assert.Equal(t, int64(4), stats.Buckets[0].Count)
	assert.Equal(t, int64(0), stats.Buckets[1].Count)
	assert.Equal(t, current, stats.Buckets[167].Start)
	assert.Equal(t, int64(7), stats.Buckets[167].Count)
}

func TestAdminService_GetConnectionStats_InvalidInterval(t *testing.T) {
	srv, _, connectionRepo, _ := createTestAdminService(t, "x")

	_, err := srv.GetConnectionStats(context.Background(), "15m")

	requireAppError(t, err, "VALIDATION_FAILED")
	connectionRepo.AssertNotCalled(t, "CountConnectionsByBucket", mock.Anything, mock.Anything, mock.Anything)
}
