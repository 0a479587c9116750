package basemap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	status  int
	headers map[string]string
	data    []byte
	paths   []string
}

func (f *stubFetcher) Get(_ context.Context, path string) (int, map[string]string, []byte) {
	f.paths = append(f.paths, path)

	return f.status, f.headers, f.data
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseSourcePath(t *testing.T) {
	absData, err := filepath.Abs("/data")
	require.NoError(t, err)

	tests := []struct {
		name            string
		source          string
		expectedBucket  string
		expectedPrefix  string
		expectedTileset string
	}{
		{
			name:            "local absolute path",
			source:          "/data/basemap.pmtiles",
			expectedBucket:  "file://" + absData,
			expectedTileset: "basemap",
		},
		{
			name:            "file URL",
			source:          "file:///data/basemap.pmtiles",
			expectedBucket:  "file://" + absData,
			expectedTileset: "basemap",
		},
		{
			name:            "https URL",
			source:          "https://cdn.example.com/tiles/basemap.pmtiles",
			expectedBucket:  "https://cdn.example.com/tiles",
			expectedTileset: "basemap",
		},
		{
			name:            "gs bucket root",
			source:          "gs://maps/basemap.pmtiles",
			expectedBucket:  "gs://maps",
			expectedTileset: "basemap",
		},
		{
			name:            "s3 bucket with nested prefix",
			source:          "s3://maps/eu/fr/basemap.pmtiles",
			expectedBucket:  "s3://maps",
			expectedPrefix:  "eu/fr",
			expectedTileset: "basemap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, tileset := parseSourcePath(tt.source)
			assert.Equal(t, tt.expectedBucket, bucket)
			assert.Equal(t, tt.expectedPrefix, prefix)
			assert.Equal(t, tt.expectedTileset, tileset)
		})
	}
}

func TestPMTilesService_GetTile(t *testing.T) {
	fetcher := &stubFetcher{
		status:  http.StatusOK,
		headers: map[string]string{"Content-Type": "application/x-protobuf", "Content-Encoding": "gzip", "Etag": `"abc"`},
		data:    []byte{0x1f, 0x8b},
	}
	svc := newPMTilesService("basemap", 14, fetcher, discardLogger())

	tile, err := svc.GetTile(context.Background(), "basemap", 12, 2074, 1409)
	require.NoError(t, err)
	require.NotNil(t, tile)
	assert.Equal(t, []string{"/basemap/12/2074/1409.mvt"}, fetcher.paths)
	assert.Equal(t, "gzip", tile.ContentEncoding)
	assert.Equal(t, `"abc"`, tile.ETag)
	assert.Equal(t, []byte{0x1f, 0x8b}, tile.Data)
}

func TestPMTilesService_GetTile_Missing(t *testing.T) {
	svc := newPMTilesService("basemap", 14, &stubFetcher{status: http.StatusNoContent}, discardLogger())

	tile, err := svc.GetTile(context.Background(), "basemap", 3, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, tile)

	tile, err = svc.GetTile(context.Background(), "other", 3, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, tile)
}

func TestPMTilesService_GetTile_Invalid(t *testing.T) {
	fetcher := &stubFetcher{status: http.StatusOK}
	svc := newPMTilesService("basemap", 14, fetcher, discardLogger())

	_, err := svc.GetTile(context.Background(), "basemap", 15, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidTile)

	// x is out of range for zoom 2 (4 columns)
	_, err = svc.GetTile(context.Background(), "basemap", 2, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = svc.GetTile(context.Background(), "basemap", 2, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidTile)

	assert.Empty(t, fetcher.paths)
}

func TestPMTilesService_GetTile_UpstreamError(t *testing.T) {
	svc := newPMTilesService("basemap", 14, &stubFetcher{status: http.StatusBadGateway}, discardLogger())

	_, err := svc.GetTile(context.Background(), "basemap", 1, 0, 0)
	assert.Error(t, err)
}
