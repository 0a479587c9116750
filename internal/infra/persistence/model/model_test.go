package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreModel_BeforeSaveSyncsLocation(t *testing.T) {
	store := &StoreModel{Lat: 48.8566, Lon: 2.3522}

	require.NoError(t, store.BeforeSave(nil))
	assert.Equal(t, orb.Point{2.3522, 48.8566}, store.Location.Point)

	store.Lat = 45.764
	require.NoError(t, store.BeforeSave(nil))
	assert.Equal(t, orb.Point{2.3522, 45.764}, store.Location.Point)
}

func TestGeoPoint_ValueScanRoundTrip(t *testing.T) {
	in := NewGeoPoint(43.2965, 5.3698)

	raw, err := in.Value()
	require.NoError(t, err)
	require.NotNil(t, raw)

	var out GeoPoint
	require.NoError(t, out.Scan(raw))
	assert.InDelta(t, 5.3698, out.Lon(), 1e-12)
	assert.InDelta(t, 43.2965, out.Lat(), 1e-12)
}

func TestGeoPoint_ScanNil(t *testing.T) {
	p := NewGeoPoint(1, 2)
	require.NoError(t, p.Scan(nil))
	assert.Equal(t, orb.Point{}, p.Point)
}
