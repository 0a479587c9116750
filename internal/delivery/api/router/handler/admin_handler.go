package handler

import (
	"net/http"
	"strconv"
	"time"

	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the moderation endpoints
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// ConnectionsResponse is the body of GET /admin/connections
type ConnectionsResponse struct {
	Total  int64                `json:"total"`
	Recent []ConnectionResponse `json:"recent"`
}

// ConnectionStatsResponse is the body of GET /admin/connection-stats
type ConnectionStatsResponse struct {
	Interval entity.StatsInterval      `json:"interval"`
	Since    time.Time                 `json:"since"`
	Buckets  []entity.ConnectionBucket `json:"buckets"`
}

// ListUpdateLogs handles GET /admin/update-logs?limit=
func (h *AdminHandler) ListUpdateLogs(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.adminUC.ListUpdateLogs(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]UpdateLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, UpdateLogResponse{
			ID:           l.ID,
			StoreID:      l.StoreID,
			StoreName:    l.StoreName,
			FlavorName:   l.FlavorName,
			Availability: l.Availability,
			SessionID:    l.SessionID,
			CreatedAt:    l.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// GetConnections handles GET /admin/connections?limit=
func (h *AdminHandler) GetConnections(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	overview, err := h.adminUC.GetConnections(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recent := make([]ConnectionResponse, 0, len(overview.Recent))
	for _, conn := range overview.Recent {
		recent = append(recent, ConnectionResponse{
			ID:        conn.ID,
			SessionID: conn.SessionID,
			UserAgent: conn.UserAgent,
			CreatedAt: conn.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, ConnectionsResponse{
		Total:  overview.Total,
		Recent: recent,
	})
}

// GetConnectionStats handles GET /admin/connection-stats?interval=5m|1h|1d
func (h *AdminHandler) GetConnectionStats(c echo.Context) error {
	interval := entity.StatsInterval(c.QueryParam("interval"))
	if interval == "" {
		interval = entity.StatsInterval1h
	}

	stats, err := h.adminUC.GetConnectionStats(c.Request().Context(), interval)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectionStatsResponse{
		Interval: stats.Interval,
		Since:    stats.Since,
		Buckets:  stats.Buckets,
	})
}

// limitParam reads the optional limit query parameter; zero lets the
// usecase apply its default.
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
	}

	return limit, nil
}
