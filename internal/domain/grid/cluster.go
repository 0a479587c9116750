package grid

import (
	"cmp"
	"math"
	"slices"

	"locator/internal/domain/entity"
)

// Cell addresses one square of the grid: floor(lat/size), floor(lon/size).
type Cell struct {
	Row int64
	Col int64
}

// CellOf snaps a coordinate to its cell. Points on a boundary belong to the
// cell whose lower edge they sit on.
func CellOf(lat, lon, size float64) Cell {
	return Cell{
		Row: int64(math.Floor(lat / size)),
		Col: int64(math.Floor(lon / size)),
	}
}

// Point is a store location fed to Cluster.
type Point struct {
	ID  int64
	Lat float64
	Lon float64
}

type accumulator struct {
	latSum float64
	lonSum float64
	ids    []int64
}

// Cluster buckets points into cells of the given size and returns one summary
// per non-empty cell, with the arithmetic mean as centroid. Output is ordered
// by row then column, member ids ascending.
func Cluster(points []Point, size float64) []entity.ClusterSummary {
	if len(points) == 0 || !validCellSize(size) {
		return []entity.ClusterSummary{}
	}

	cells := make(map[Cell]*accumulator)
	for _, p := range points {
		key := CellOf(p.Lat, p.Lon, size)
		acc, ok := cells[key]
		if !ok {
			acc = &accumulator{}
			cells[key] = acc
		}
		acc.latSum += p.Lat
		acc.lonSum += p.Lon
		acc.ids = append(acc.ids, p.ID)
	}

	keys := make([]Cell, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compareCells)

	summaries := make([]entity.ClusterSummary, 0, len(keys))
	for _, key := range keys {
		acc := cells[key]
		n := float64(len(acc.ids))
		slices.Sort(acc.ids)
		summaries = append(summaries, entity.ClusterSummary{
			Lat:      acc.latSum / n,
			Lon:      acc.lonSum / n,
			Count:    len(acc.ids),
			StoreIDs: acc.ids,
		})
	}

	return summaries
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}
