package basemap

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"locator/config"
	"locator/internal/domain/service"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const defaultCacheSize = 64

// ErrInvalidTile is returned for tile addresses outside the zoom pyramid.
var ErrInvalidTile = service.ErrInvalidTile

// tileFetcher is the subset of *pmtiles.Server used to read tiles.
type tileFetcher interface {
	Get(ctx context.Context, path string) (int, map[string]string, []byte)
}

type pmtilesService struct {
	tileset string
	maxZoom int
	fetcher tileFetcher
	logger  *slog.Logger
}

// ServiceParams holds dependencies for the basemap service
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPMTilesService serves basemap tiles from the configured PMTiles archive.
// It returns nil when the basemap is disabled.
func NewPMTilesService(params ServiceParams) (service.BasemapService, error) {
	cfg := params.Config.Basemap
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Basemap tiles disabled")

		return nil, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("basemap source is required when enabled")
	}

	bucketPath, prefix, tileset := parseSourcePath(cfg.Source)

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	// pmtiles requires a *log.Logger; its chatter is dropped
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketPath, prefix, silentLogger, cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	params.Logger.Info("Basemap tiles enabled",
		slog.String("source", cfg.Source),
		slog.String("tileset", tileset),
		slog.Int("cache_size", cacheSize),
	)

	return newPMTilesService(tileset, cfg.MaxZoom, server, params.Logger), nil
}

func newPMTilesService(tileset string, maxZoom int, fetcher tileFetcher, logger *slog.Logger) *pmtilesService {
	if maxZoom <= 0 {
		maxZoom = 16
	}

	return &pmtilesService{
		tileset: tileset,
		maxZoom: maxZoom,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetTile reads one vector tile. Unknown tilesets and empty tiles return nil.
func (s *pmtilesService) GetTile(ctx context.Context, tileset string, z, x, y int) (*service.Tile, error) {
	if tileset != s.tileset {
		return nil, nil
	}

	if z < 0 || z > s.maxZoom || x < 0 || y < 0 {
		return nil, ErrInvalidTile
	}
	tile := maptile.New(uint32(x), uint32(y), maptile.Zoom(z))
	if !tile.Valid() {
		return nil, ErrInvalidTile
	}

	tilePath := fmt.Sprintf("/%s/%d/%d/%d.mvt", s.tileset, tile.Z, tile.X, tile.Y)
	statusCode, headers, data := s.fetcher.Get(ctx, tilePath)

	switch statusCode {
	case http.StatusOK:
		return &service.Tile{
			Data:            data,
			ContentType:     headerValue(headers, "Content-Type", "application/x-protobuf"),
			ContentEncoding: headerValue(headers, "Content-Encoding", ""),
			ETag:            headerValue(headers, "ETag", ""),
		}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, nil
	default:
		s.logger.Warn("Basemap tile read failed",
			slog.String("path", tilePath),
			slog.Int("status", statusCode),
		)

		return nil, errors.Errorf("unexpected status code: %d", statusCode)
	}
}

func headerValue(headers map[string]string, key, fallback string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}

	return fallback
}

// parseSourcePath splits a source into the bucket URL, the key prefix inside
// the bucket and the tileset name.
// Examples:
//   - "/data/basemap.pmtiles" -> ("file:///data", "", "basemap")
//   - "https://cdn.example.com/tiles/basemap.pmtiles" -> ("https://cdn.example.com/tiles", "", "basemap")
//   - "gs://bucket/maps/basemap.pmtiles" -> ("gs://bucket", "maps", "basemap")
func parseSourcePath(source string) (bucketPath, prefix, tileset string) {
	for _, scheme := range []string{"gs://", "s3://", "azblob://"} {
		if !strings.HasPrefix(source, scheme) {
			continue
		}

		rest := strings.TrimPrefix(source, scheme)
		bucket, key, _ := strings.Cut(rest, "/")
		dir, file := splitKey(key)

		return scheme + bucket, dir, strings.TrimSuffix(file, ".pmtiles")
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if lastSlash := strings.LastIndex(source, "/"); lastSlash > len("https://") {
			return source[:lastSlash], "", strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
		}
	}

	path := strings.TrimPrefix(source, "file://")
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	return "file://" + dir, "", strings.TrimSuffix(filepath.Base(path), ".pmtiles")
}

func splitKey(key string) (dir, file string) {
	lastSlash := strings.LastIndex(key, "/")
	if lastSlash < 0 {
		return "", key
	}

	return key[:lastSlash], key[lastSlash+1:]
}
