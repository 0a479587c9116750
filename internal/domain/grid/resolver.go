// Package grid maps zoom levels to fixed grid cells and buckets stores into them.
package grid

import "math"

// step pairs a minimum zoom with the cell edge, in degrees, used from that zoom up.
type step struct {
	minZoom  int
	cellSize float64
}

// steps must stay sorted by descending minZoom.
var steps = []step{
	{minZoom: 16, cellSize: 0.0005},
	{minZoom: 14, cellSize: 0.001},
	{minZoom: 12, cellSize: 0.01},
	{minZoom: 10, cellSize: 0.035},
	{minZoom: 8, cellSize: 0.12},
	{minZoom: 6, cellSize: 0.25},
	{minZoom: 5, cellSize: 0.5},
	{minZoom: 4, cellSize: 1},
}

// fallbackCellSize applies below the lowest step. It equals the coarsest
// step so that a higher zoom never yields a larger cell.
const fallbackCellSize = 1.0

// ResolveCellSize returns the grid cell edge, in degrees, for a map zoom level.
func ResolveCellSize(zoom int) float64 {
	for _, s := range steps {
		if zoom >= s.minZoom {
			return s.cellSize
		}
	}

	return fallbackCellSize
}

// Resolve picks the cell size for a query. A finite positive explicit size
// wins; otherwise the zoom is resolved. It reports false when neither is usable.
func Resolve(zoom *int, cellSize *float64) (float64, bool) {
	if cellSize != nil && validCellSize(*cellSize) {
		return *cellSize, true
	}
	if zoom != nil {
		return ResolveCellSize(*zoom), true
	}

	return 0, false
}

func validCellSize(size float64) bool {
	return size > 0 && !math.IsNaN(size) && !math.IsInf(size, 0)
}
