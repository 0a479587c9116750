package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"locator/internal/delivery/api/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FlavorHandlerParams holds dependencies for FlavorHandler, injected by Fx.
type FlavorHandlerParams struct {
	fx.In

	FlavorUC usecase.FlavorUsecase
	Logger   *slog.Logger
}

// FlavorHandler serves the flavor catalog
type FlavorHandler struct {
	flavorUC usecase.FlavorUsecase
	logger   *slog.Logger
}

// NewFlavorHandler is the constructor for FlavorHandler
func NewFlavorHandler(params FlavorHandlerParams) *FlavorHandler {
	return &FlavorHandler{
		flavorUC: params.FlavorUC,
		logger:   params.Logger,
	}
}

// SubscribeRestockRequest represents the request body for a restock subscription
type SubscribeRestockRequest struct {
	DeviceToken string `json:"device_token" validate:"required"`
}

// ListFlavors handles GET /flavors?q=
func (h *FlavorHandler) ListFlavors(c echo.Context) error {
	flavors, err := h.flavorUC.ListFlavors(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]FlavorResponse, 0, len(flavors))
	for _, f := range flavors {
		out = append(out, FlavorResponse{Name: f.Name, Image: f.Image})
	}

	return response.Success(c, http.StatusOK, out)
}

// SubscribeRestock handles POST /flavors/:name/subscribe
func (h *FlavorHandler) SubscribeRestock(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid flavor name"))
	}

	var req SubscribeRestockRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidInput(c, err.Error())
	}

	out, err := h.flavorUC.SubscribeRestock(c.Request().Context(), name, req.DeviceToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}
