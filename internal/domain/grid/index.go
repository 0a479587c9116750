package grid

import (
	"math"

	"locator/internal/domain/entity"
)

// Index buckets points into coarse cells so bounding-box scans only touch
// the cells the box overlaps. It is not safe for concurrent mutation.
type Index struct {
	cellSize float64
	cells    map[Cell][]Point
	size     int
}

// NewIndex creates an empty index with the given bucket edge in degrees.
func NewIndex(cellSize float64) *Index {
	if !validCellSize(cellSize) {
		cellSize = 1
	}

	return &Index{
		cellSize: cellSize,
		cells:    make(map[Cell][]Point),
	}
}

// Insert adds a point.
func (idx *Index) Insert(p Point) {
	key := CellOf(p.Lat, p.Lon, idx.cellSize)
	idx.cells[key] = append(idx.cells[key], p)
	idx.size++
}

// Size returns the number of indexed points.
func (idx *Index) Size() int {
	return idx.size
}

// InBounds returns every point inside box, edges included.
func (idx *Index) InBounds(box entity.BBox) []Point {
	if idx.size == 0 {
		return nil
	}

	minCell := CellOf(box.South, box.West, idx.cellSize)
	maxCell := CellOf(box.North, box.East, idx.cellSize)

	// A box spanning more cells than exist is cheaper to answer by a full scan.
	spanCells := float64(maxCell.Row-minCell.Row+1) * float64(maxCell.Col-minCell.Col+1)
	if spanCells > float64(len(idx.cells)) || math.IsInf(spanCells, 0) {
		return idx.scan(box)
	}

	var out []Point
	for row := minCell.Row; row <= maxCell.Row; row++ {
		for col := minCell.Col; col <= maxCell.Col; col++ {
			for _, p := range idx.cells[Cell{Row: row, Col: col}] {
				if box.Contains(p.Lat, p.Lon) {
					out = append(out, p)
				}
			}
		}
	}

	return out
}

func (idx *Index) scan(box entity.BBox) []Point {
	var out []Point
	for _, points := range idx.cells {
		for _, p := range points {
			if box.Contains(p.Lat, p.Lon) {
				out = append(out, p)
			}
		}
	}

	return out
}
