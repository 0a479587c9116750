package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC        usecase.StoreUsecase
	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers
type StoreHandler struct {
	storeUC        usecase.StoreUsecase
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC:        params.StoreUC,
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// SetAvailabilityRequest represents the request body for a status report
type SetAvailabilityRequest struct {
	Available *uint8  `json:"available" validate:"required,lte=2"`
	SessionID *string `json:"session_id" validate:"omitempty,max=64"`
}

// SetAvailabilityResponse is the committed status of a (store, flavor) pair
type SetAvailabilityResponse struct {
	StoreID    int64               `json:"store_id"`
	FlavorName string              `json:"flavor_name"`
	Available  entity.Availability `json:"available"`
	Previous   entity.Availability `json:"previous"`
	Changed    bool                `json:"changed"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// GetStore handles GET /stores/:id
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := parseStoreID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.storeUC.GetStoreDetail(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StoreDetailResponse{
		StoreResponse: toStoreResponse(&detail.Store),
		Flavors:       detail.Flavors,
	})
}

// SetAvailability handles PUT /stores/:id/flavors/:flavor
func (h *StoreHandler) SetAvailability(c echo.Context) error {
	storeID, err := parseStoreID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "invalid availability input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidAvailability.WithDetails(err.Error()))
	}

	out, err := h.availabilityUC.SetAvailability(c.Request().Context(), &usecase.SetAvailabilityInput{
		StoreID:    storeID,
		FlavorName: flavorParam(c),
		Available:  entity.Availability(*req.Available),
		SessionID:  req.SessionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SetAvailabilityResponse{
		StoreID:    out.Record.StoreID,
		FlavorName: out.Record.FlavorName,
		Available:  out.Record.Available,
		Previous:   out.Previous,
		Changed:    out.Changed,
		UpdatedAt:  out.Record.UpdatedAt,
	})
}

// GetStoreQRCode handles GET /stores/:id/qr
func (h *StoreHandler) GetStoreQRCode(c echo.Context) error {
	storeID, err := parseStoreID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.storeUC.GetStoreQRCode(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseStoreID(c echo.Context) (int64, error) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || storeID <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid store id")
	}

	return storeID, nil
}

// flavorParam returns the decoded :flavor path segment. Names may carry
// spaces and accents, which arrive percent-encoded.
func flavorParam(c echo.Context) string {
	raw := c.Param("flavor")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}
