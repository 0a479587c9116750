package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"locator/internal/delivery/api/response"
	"locator/internal/domain/constants"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	AggregationUC usecase.AggregationUsecase
	Logger        *slog.Logger
}

// MapHandler serves the viewport endpoints of the map.
type MapHandler struct {
	aggregationUC usecase.AggregationUsecase
	logger        *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		aggregationUC: params.AggregationUC,
		logger:        params.Logger,
	}
}

// StoresInBounds answers GET /stores-in-bounds.
//
// Query: swLat, swLon, neLat, neLon (required), zoom, cellSize, mode,
// flavor (single) and flavors (comma separated), format=geojson.
func (h *MapHandler) StoresInBounds(c echo.Context) error {
	var bbox entity.BBox
	err := echo.QueryParamsBinder(c).
		FailFast(true).
		MustFloat64("swLat", &bbox.South).
		MustFloat64("swLon", &bbox.West).
		MustFloat64("neLat", &bbox.North).
		MustFloat64("neLon", &bbox.East).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidViewport.WithDetails(bindErrorDetails(err)))
	}

	input := &usecase.AggregateInput{
		BBox:    bbox,
		Flavors: parseFlavorParams(c.QueryParam("flavor"), c.QueryParam("flavors")),
		Mode:    entity.ViewMode(c.QueryParam("mode")),
	}

	if raw := c.QueryParam("zoom"); raw != "" {
		zoom, err := strconv.Atoi(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("zoom must be an integer"))
		}
		input.Zoom = &zoom
	}

	if raw := c.QueryParam("cellSize"); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("cellSize must be a number"))
		}
		input.CellSize = &size
	}

	result, err := h.aggregationUC.Aggregate(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == formatGeoJSON {
		data, err := toFeatureCollection(result).MarshalJSON()
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if result.Truncated {
			c.Response().Header().Set(constants.HeaderResultTruncated, "true")
		}

		return c.Blob(http.StatusOK, "application/geo+json", data)
	}

	return response.Success(c, http.StatusOK, toAggregateResponse(result))
}

// CellSizeResponse is the body of GET /grid/cell-size.
type CellSizeResponse struct {
	Zoom     int             `json:"zoom"`
	CellSize float64         `json:"cell_size"`
	Mode     entity.ViewMode `json:"mode"`
}

// CellSize answers GET /grid/cell-size?zoom=.
func (h *MapHandler) CellSize(c echo.Context) error {
	var zoom int
	if err := echo.QueryParamsBinder(c).MustInt("zoom", &zoom).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(bindErrorDetails(err)))
	}

	mode := entity.ModePoints
	if zoom <= h.aggregationUC.ClusterZoomThreshold() {
		mode = entity.ModeClusters
	}

	return response.Success(c, http.StatusOK, CellSizeResponse{
		Zoom:     zoom,
		CellSize: h.aggregationUC.ResolveCellSize(zoom),
		Mode:     mode,
	})
}

// parseFlavorParams merges the single and the comma separated flavor
// parameters. Blank names and duplicates are left to the usecase.
func parseFlavorParams(single, list string) []string {
	var flavors []string
	if single != "" {
		flavors = append(flavors, single)
	}
	if list != "" {
		flavors = append(flavors, strings.Split(list, ",")...)
	}

	return flavors
}

func bindErrorDetails(err error) string {
	if bindErr, ok := errors.AsType[*echo.BindingError](err); ok {
		return bindErr.Field + ": " + fmt.Sprint(bindErr.Message)
	}

	return err.Error()
}
