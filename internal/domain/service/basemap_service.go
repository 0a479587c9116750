package service

import (
	"context"

	"locator/internal/errors"
)

// ErrInvalidTile is returned for tile addresses outside the zoom pyramid.
var ErrInvalidTile = errors.New("invalid tile coordinates")

// Tile is one encoded basemap tile.
type Tile struct {
	Data            []byte
	ContentType     string
	ContentEncoding string
	ETag            string
}

// BasemapService serves vector tiles for the map background.
type BasemapService interface {
	// GetTile returns the tile, or nil when the archive has no tile at that address.
	GetTile(ctx context.Context, tileset string, z, x, y int) (*Tile, error)
}
