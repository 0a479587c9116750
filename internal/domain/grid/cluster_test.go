package grid

import (
	"math/rand/v2"
	"testing"

	"locator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellOf(t *testing.T) {
	assert.Equal(t, Cell{Row: 407, Col: 19}, CellOf(48.85, 2.35, 0.12))
	assert.Equal(t, Cell{Row: -1, Col: -1}, CellOf(-0.01, -0.01, 0.5))
	// Boundary points snap to the cell whose lower edge they sit on.
	assert.Equal(t, Cell{Row: 2, Col: 3}, CellOf(1.0, 1.5, 0.5))
}

func TestCluster_SingleCellCentroid(t *testing.T) {
	points := []Point{
		{ID: 1, Lat: 48.85, Lon: 2.31},
		{ID: 2, Lat: 48.88, Lon: 2.35},
		{ID: 3, Lat: 48.91, Lon: 2.38},
	}

	clusters := Cluster(points, ResolveCellSize(8))

	require.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].Count)
	assert.InDelta(t, (48.85+48.88+48.91)/3, clusters[0].Lat, 1e-9)
	assert.InDelta(t, (2.31+2.35+2.38)/3, clusters[0].Lon, 1e-9)
	assert.Equal(t, []int64{1, 2, 3}, clusters[0].StoreIDs)
}

func TestCluster_SplitsAcrossCells(t *testing.T) {
	points := []Point{
		{ID: 10, Lat: 0.1, Lon: 0.1},
		{ID: 11, Lat: 0.2, Lon: 0.2},
		{ID: 12, Lat: 0.6, Lon: 0.1},
		{ID: 13, Lat: 0.1, Lon: 0.6},
	}

	clusters := Cluster(points, 0.5)

	require.Len(t, clusters, 3)
	assert.Equal(t, []int64{10, 11}, clusters[0].StoreIDs)
	assert.Equal(t, []int64{13}, clusters[1].StoreIDs)
	assert.Equal(t, []int64{12}, clusters[2].StoreIDs)
}

func TestCluster_Empty(t *testing.T) {
	assert.Empty(t, Cluster(nil, 0.5))
	assert.Empty(t, Cluster([]Point{{ID: 1}}, 0))
}

func TestCluster_ConservesStores(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	points := make([]Point, 500)
	for i := range points {
		points[i] = Point{ID: int64(i + 1), Lat: 40 + rng.Float64()*2, Lon: 2 + rng.Float64()*3}
	}

	for _, size := range []float64{0.0005, 0.01, 0.12, 1} {
		clusters := Cluster(points, size)

		total := 0
		seen := make(map[int64]int)
		for _, c := range clusters {
			total += c.Count
			assert.Len(t, c.StoreIDs, c.Count)
			for _, id := range c.StoreIDs {
				seen[id]++
			}
		}

		assert.Equal(t, len(points), total, "cell size %v", size)
		assert.Len(t, seen, len(points))
		for id, n := range seen {
			assert.Equal(t, 1, n, "store %d in %d clusters", id, n)
		}
	}
}

func TestIndex_InBounds(t *testing.T) {
	idx := NewIndex(0.1)
	idx.Insert(Point{ID: 1, Lat: 48.85, Lon: 2.35})
	idx.Insert(Point{ID: 2, Lat: 48.86, Lon: 2.36})
	idx.Insert(Point{ID: 3, Lat: 45.76, Lon: 4.83})

	assert.Equal(t, 3, idx.Size())

	got := idx.InBounds(entity.BBox{South: 48.8, West: 2.3, North: 48.9, East: 2.4})
	ids := make([]int64, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	all := idx.InBounds(entity.BBox{South: -90, West: -180, North: 90, East: 180})
	assert.Len(t, all, 3)

	assert.Empty(t, NewIndex(0.1).InBounds(entity.BBox{South: 0, West: 0, North: 1, East: 1}))
}
