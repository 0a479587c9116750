package entity

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ViewMode selects the shape of an aggregation result.
type ViewMode string

const (
	ModeClusters ViewMode = "clusters"
	ModePoints   ViewMode = "points"
)

// Valid reports whether m is a known mode.
func (m ViewMode) Valid() bool {
	return m == ModeClusters || m == ModePoints
}

// BBox is a viewport in degrees. West > East is not supported.
type BBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// NewBBoxFromBound converts an orb bound (min = south-west).
func NewBBoxFromBound(b orb.Bound) BBox {
	return BBox{South: b.Min.Lat(), West: b.Min.Lon(), North: b.Max.Lat(), East: b.Max.Lon()}
}

// Bound returns the box as an orb.Bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.West, b.South}, Max: orb.Point{b.East, b.North}}
}

// Valid reports whether every edge is a finite WGS84 coordinate and the box
// is not inverted.
func (b BBox) Valid() bool {
	if !ValidCoordinate(b.South, b.West) || !ValidCoordinate(b.North, b.East) {
		return false
	}

	return b.South <= b.North && b.West <= b.East
}

// Contains reports whether the point lies inside the box, edges included.
func (b BBox) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}

// Center returns the midpoint of the box.
func (b BBox) Center() LatLon {
	return LatLon{Lat: (b.South + b.North) / 2, Lon: (b.West + b.East) / 2}
}

// Span returns the height and width of the box in degrees.
func (b BBox) Span() LatLon {
	return LatLon{Lat: math.Abs(b.North - b.South), Lon: math.Abs(b.East - b.West)}
}

// Key identifies the box at 1e-5 degree granularity (about one metre).
func (b BBox) Key() string {
	parts := []string{
		strconv.FormatFloat(b.South, 'f', 5, 64),
		strconv.FormatFloat(b.West, 'f', 5, 64),
		strconv.FormatFloat(b.North, 'f', 5, 64),
		strconv.FormatFloat(b.East, 'f', 5, 64),
	}

	return strings.Join(parts, "|")
}

// LatLon is a plain coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ViewportQuery is a single aggregation request.
type ViewportQuery struct {
	BBox     BBox
	Zoom     *int
	CellSize *float64
	Flavors  []string
	Mode     ViewMode
}

// ClusterSummary is the aggregate of all qualifying stores in one grid cell.
type ClusterSummary struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Count    int     `json:"count"`
	StoreIDs []int64 `json:"store_ids"`
}

// Point returns the cluster centroid as an orb point (lon, lat).
func (c ClusterSummary) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// NormalizeFlavors trims names and drops blanks and duplicates, keeping the
// first occurrence order.
func NormalizeFlavors(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// FlavorsKey is an order-independent identity of a flavor filter.
func FlavorsKey(names []string) string {
	normalized := NormalizeFlavors(names)
	sorted := slices.Clone(normalized)
	slices.Sort(sorted)

	return strings.Join(sorted, "|")
}
