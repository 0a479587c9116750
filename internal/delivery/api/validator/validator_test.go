package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundsQuery struct {
	SouthLat *float64 `query:"swLat" validate:"required,gte=-90,lte=90"`
	Mode     string   `query:"mode" validate:"omitempty,oneof=clusters points"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 12.5

	require.NoError(t, v.Validate(&boundsQuery{SouthLat: &lat, Mode: "points"}))

	err := v.Validate(&boundsQuery{Mode: "heatmap"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swLat failed on required")
	assert.Contains(t, err.Error(), "mode failed on oneof=clusters points")

	tooFar := 91.0
	err = v.Validate(&boundsQuery{SouthLat: &tooFar})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swLat failed on lte=90")
}
