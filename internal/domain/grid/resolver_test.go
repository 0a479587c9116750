package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCellSize_Table(t *testing.T) {
	tests := []struct {
		zoom int
		want float64
	}{
		{zoom: 22, want: 0.0005},
		{zoom: 16, want: 0.0005},
		{zoom: 15, want: 0.001},
		{zoom: 14, want: 0.001},
		{zoom: 13, want: 0.01},
		{zoom: 12, want: 0.01},
		{zoom: 11, want: 0.035},
		{zoom: 10, want: 0.035},
		{zoom: 9, want: 0.12},
		{zoom: 8, want: 0.12},
		{zoom: 7, want: 0.25},
		{zoom: 6, want: 0.25},
		{zoom: 5, want: 0.5},
		{zoom: 4, want: 1},
		{zoom: 3, want: 1},
		{zoom: 0, want: 1},
		{zoom: -2, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveCellSize(tt.zoom), "zoom %d", tt.zoom)
	}
}

func TestResolveCellSize_Monotone(t *testing.T) {
	for z1 := -5; z1 <= 25; z1++ {
		for z2 := z1 + 1; z2 <= 25; z2++ {
			assert.GreaterOrEqual(t, ResolveCellSize(z1), ResolveCellSize(z2), "zoom %d vs %d", z1, z2)
		}
	}
}

func TestResolve(t *testing.T) {
	zoom := 8
	explicit := 0.3
	zero := 0.0
	nan := math.NaN()

	size, ok := Resolve(&zoom, nil)
	assert.True(t, ok)
	assert.Equal(t, 0.12, size)

	size, ok = Resolve(&zoom, &explicit)
	assert.True(t, ok)
	assert.Equal(t, 0.3, size)

	size, ok = Resolve(nil, &explicit)
	assert.True(t, ok)
	assert.Equal(t, 0.3, size)

	size, ok = Resolve(&zoom, &zero)
	assert.True(t, ok)
	assert.Equal(t, 0.12, size)

	_, ok = Resolve(nil, &nan)
	assert.False(t, ok)

	_, ok = Resolve(nil, nil)
	assert.False(t, ok)
}
