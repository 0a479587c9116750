package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"locator/internal/delivery/api/response"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	Basemap service.BasemapService `optional:"true"`
	Logger  *slog.Logger
}

// TileHandler serves basemap vector tiles
type TileHandler struct {
	basemap service.BasemapService
	logger  *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		basemap: params.Basemap,
		logger:  params.Logger,
	}
}

// GetTile handles GET /tiles/:tileset/:z/:x/:y. The y segment may carry a
// .mvt or .pbf extension.
func (h *TileHandler) GetTile(c echo.Context) error {
	if h.basemap == nil {
		return response.HandleAppError(c, domainerrors.ErrServiceUnavailable.WithDetails("basemap tiles are disabled"))
	}

	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	y, errY := strconv.Atoi(trimTileExt(c.Param("y")))
	if errZ != nil || errX != nil || errY != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidTile)
	}

	tile, err := h.basemap.GetTile(c.Request().Context(), c.Param("tileset"), z, x, y)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTile) {
			return response.HandleAppError(c, domainerrors.ErrInvalidTile)
		}

		return errors.Wrap(err, "failed to read basemap tile")
	}

	if tile == nil {
		return c.NoContent(http.StatusNoContent)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "public, max-age=86400")
	if tile.ContentEncoding != "" {
		header.Set(echo.HeaderContentEncoding, tile.ContentEncoding)
	}
	if tile.ETag != "" {
		header.Set("ETag", tile.ETag)
		if c.Request().Header.Get("If-None-Match") == tile.ETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.Blob(http.StatusOK, tile.ContentType, tile.Data)
}

func trimTileExt(y string) string {
	for _, ext := range []string{".mvt", ".pbf"} {
		if trimmed, ok := strings.CutSuffix(y, ext); ok {
			return trimmed
		}
	}

	return y
}
