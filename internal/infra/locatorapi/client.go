// Package locatorapi is an HTTP client for the public /api/v1 endpoints.
package locatorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/mapsync"

	"github.com/pkg/errors"
)

const (
	defaultTimeout  = 10 * time.Second
	headerSessionID = "X-Session-Id"
)

// APIError is a non-2xx answer from the server. Retryable mirrors the
// server's verdict that the same request may succeed later.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("locator api: status %d", e.StatusCode)
	}

	return fmt.Sprintf("locator api: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Client talks to a locator API server. It implements mapsync.Fetcher and
// mapsync.Writer.
type Client struct {
	baseURL    *url.URL
	sessionID  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSessionID sends the anonymous session id with every request.
func WithSessionID(sessionID string) Option {
	return func(c *Client) { c.sessionID = sessionID }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("base url must be absolute: %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
}

type storeWire struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (s storeWire) toEntity() entity.Store {
	return entity.Store{ID: s.ID, Name: s.Name, Address: s.Address, Lat: s.Lat, Lon: s.Lon}
}

type availabilityWire struct {
	FlavorName string              `json:"flavor_name"`
	Available  entity.Availability `json:"available"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type aggregateWire struct {
	Mode     entity.ViewMode         `json:"mode"`
	CellSize float64                 `json:"cell_size"`
	Clusters []entity.ClusterSummary `json:"clusters"`
	Stores   []struct {
		storeWire
		Availability []availabilityWire `json:"availability"`
	} `json:"stores"`
	Truncated bool `json:"truncated"`
}

type setAvailabilityWire struct {
	StoreID    int64               `json:"store_id"`
	FlavorName string              `json:"flavor_name"`
	Available  entity.Availability `json:"available"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type storeDetailWire struct {
	storeWire
	Flavors []entity.FlavorAvailability `json:"flavors"`
}

type flavorWire struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// Fetch runs GET /api/v1/stores-in-bounds for the query.
func (c *Client) Fetch(ctx context.Context, query entity.ViewportQuery) (*mapsync.Result, error) {
	params := url.Values{}
	params.Set("swLat", formatFloat(query.BBox.South))
	params.Set("swLon", formatFloat(query.BBox.West))
	params.Set("neLat", formatFloat(query.BBox.North))
	params.Set("neLon", formatFloat(query.BBox.East))
	if query.Zoom != nil {
		params.Set("zoom", strconv.Itoa(*query.Zoom))
	}
	if query.CellSize != nil {
		params.Set("cellSize", formatFloat(*query.CellSize))
	}
	if query.Mode != "" {
		params.Set("mode", string(query.Mode))
	}
	if flavors := entity.NormalizeFlavors(query.Flavors); len(flavors) > 0 {
		params.Set("flavors", strings.Join(flavors, ","))
	}

	var wire aggregateWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/stores-in-bounds", params, nil, &wire); err != nil {
		return nil, err
	}

	result := &mapsync.Result{
		Mode:      wire.Mode,
		CellSize:  wire.CellSize,
		Clusters:  wire.Clusters,
		Truncated: wire.Truncated,
	}
	for _, s := range wire.Stores {
		sa := entity.StoreAvailability{Store: s.toEntity()}
		for _, a := range s.Availability {
			sa.Availability = append(sa.Availability, entity.AvailabilityRecord{
				StoreID:    s.ID,
				FlavorName: a.FlavorName,
				Available:  a.Available,
				UpdatedAt:  a.UpdatedAt,
			})
		}
		result.Stores = append(result.Stores, sa)
	}

	return result, nil
}

// SetAvailability runs PUT /api/v1/stores/:id/flavors/:flavor.
func (c *Client) SetAvailability(ctx context.Context, storeID int64, flavorName string, status entity.Availability) (*entity.AvailabilityRecord, error) {
	body := map[string]any{"available": uint8(status)}
	if c.sessionID != "" {
		body["session_id"] = c.sessionID
	}

	path := "/api/v1/stores/" + strconv.FormatInt(storeID, 10) + "/flavors/" + url.PathEscape(flavorName)
	var wire setAvailabilityWire
	if err := c.do(ctx, http.MethodPut, path, nil, body, &wire); err != nil {
		return nil, err
	}

	return &entity.AvailabilityRecord{
		StoreID:    wire.StoreID,
		FlavorName: wire.FlavorName,
		Available:  wire.Available,
		UpdatedAt:  wire.UpdatedAt,
	}, nil
}

// GetStore runs GET /api/v1/stores/:id.
func (c *Client) GetStore(ctx context.Context, storeID int64) (*entity.StoreDetail, error) {
	var wire storeDetailWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/stores/"+strconv.FormatInt(storeID, 10), nil, nil, &wire); err != nil {
		return nil, err
	}

	return &entity.StoreDetail{Store: wire.toEntity(), Flavors: wire.Flavors}, nil
}

// ListFlavors runs GET /api/v1/flavors?q=.
func (c *Client) ListFlavors(ctx context.Context, query string) ([]*entity.Flavor, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	var wire []flavorWire
	if err := c.do(ctx, http.MethodGet, "/api/v1/flavors", params, nil, &wire); err != nil {
		return nil, err
	}

	flavors := make([]*entity.Flavor, 0, len(wire))
	for _, f := range wire {
		flavors = append(flavors, &entity.Flavor{Name: f.Name, Image: f.Image})
	}

	return flavors, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return errors.Wrap(err, "invalid request path")
	}
	u := *c.baseURL
	// Keep percent-encoded segments such as flavor names intact
	u.Path = c.baseURL.Path + decoded
	u.RawPath = c.baseURL.EscapedPath() + path
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set(headerSessionID, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode < 300 {
		return errors.Wrap(err, "failed to decode response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
			apiErr.Retryable = env.Error.Retryable
		}
		c.logger.Debug("Locator API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
			slog.Bool("retryable", apiErr.Retryable),
		)

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
