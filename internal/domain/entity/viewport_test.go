package entity

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBBox_Valid(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want bool
	}{
		{name: "paris", box: BBox{South: 48.8, West: 2.2, North: 48.9, East: 2.4}, want: true},
		{name: "degenerate point", box: BBox{South: 1, West: 1, North: 1, East: 1}, want: true},
		{name: "inverted latitude", box: BBox{South: 49, West: 2.2, North: 48, East: 2.4}, want: false},
		{name: "antimeridian", box: BBox{South: -10, West: 170, North: 10, East: -170}, want: false},
		{name: "latitude out of range", box: BBox{South: -91, West: 0, North: 0, East: 1}, want: false},
		{name: "longitude out of range", box: BBox{South: 0, West: 0, North: 1, East: 181}, want: false},
		{name: "nan", box: BBox{South: math.NaN(), West: 0, North: 1, East: 1}, want: false},
		{name: "inf", box: BBox{South: 0, West: 0, North: math.Inf(1), East: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Valid())
		})
	}
}

func TestBBox_BoundRoundTrip(t *testing.T) {
	box := BBox{South: 48.8, West: 2.2, North: 48.9, East: 2.4}

	bound := box.Bound()
	assert.Equal(t, orb.Point{2.2, 48.8}, bound.Min)
	assert.Equal(t, orb.Point{2.4, 48.9}, bound.Max)
	assert.Equal(t, box, NewBBoxFromBound(bound))
}

func TestBBox_CenterSpanKey(t *testing.T) {
	box := BBox{South: 10, West: 20, North: 12, East: 26}

	assert.Equal(t, LatLon{Lat: 11, Lon: 23}, box.Center())
	assert.Equal(t, LatLon{Lat: 2, Lon: 6}, box.Span())
	assert.Equal(t, "10.00000|20.00000|12.00000|26.00000", box.Key())

	nudged := BBox{South: 10.000001, West: 20, North: 12, East: 26}
	assert.Equal(t, box.Key(), nudged.Key())
}

func TestNormalizeFlavors(t *testing.T) {
	assert.Nil(t, NormalizeFlavors(nil))
	assert.Equal(t, []string{"Vanilla", "Mango"}, NormalizeFlavors([]string{" Vanilla", "", "Mango", "Vanilla"}))
}

func TestFlavorsKey_IgnoresOrderAndDuplicates(t *testing.T) {
	assert.Equal(t, FlavorsKey([]string{"b", "a"}), FlavorsKey([]string{"a", "b", "a"}))
	assert.Equal(t, "", FlavorsKey(nil))
}
