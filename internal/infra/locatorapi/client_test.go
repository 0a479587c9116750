package locatorapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "r"}}))
}

func TestClient_FetchPoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stores-in-bounds", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "48.8", q.Get("swLat"))
		assert.Equal(t, "2.4", q.Get("neLon"))
		assert.Equal(t, "16", q.Get("zoom"))
		assert.Equal(t, "points", q.Get("mode"))
		assert.Equal(t, "Pistache,Vanille", q.Get("flavors"))
		assert.Equal(t, "sess-1", r.Header.Get("X-Session-Id"))

		writeData(t, w, http.StatusOK, map[string]any{
			"mode": "points",
			"stores": []map[string]any{{
				"id": 7, "name": "Glacier Rivoli", "address": "1 rue de Rivoli", "lat": 48.86, "lon": 2.34,
				"availability": []map[string]any{{"flavor_name": "Vanille", "available": 1, "updated_at": "2026-05-01T12:00:00Z"}},
			}},
			"truncated": true,
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithSessionID("sess-1"))
	require.NoError(t, err)

	zoom := 16
	result, err := client.Fetch(t.Context(), entity.ViewportQuery{
		BBox:    entity.BBox{South: 48.8, West: 2.3, North: 48.9, East: 2.4},
		Zoom:    &zoom,
		Flavors: []string{"Pistache", "Vanille", "Pistache"},
		Mode:    entity.ModePoints,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ModePoints, result.Mode)
	assert.True(t, result.Truncated)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "Glacier Rivoli", result.Stores[0].Store.Name)
	require.Len(t, result.Stores[0].Availability, 1)
	assert.Equal(t, int64(7), result.Stores[0].Availability[0].StoreID)
	assert.Equal(t, entity.AvailabilityAvailable, result.Stores[0].Availability[0].Available)
}

func TestClient_SetAvailabilityEscapesFlavor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/stores/5/flavors/Cr%C3%A8me%20br%C3%BBl%C3%A9e", r.URL.EscapedPath())

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"available":2,"session_id":"s"}`, string(body))

		writeData(t, w, http.StatusOK, map[string]any{
			"store_id": 5, "flavor_name": "Crème brûlée", "available": 2, "updated_at": "2026-05-01T12:00:00Z",
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL+"/", WithSessionID("s"))
	require.NoError(t, err)

	rec, err := client.SetAvailability(t.Context(), 5, "Crème brûlée", entity.AvailabilityUnavailable)
	require.NoError(t, err)
	assert.Equal(t, "Crème brûlée", rec.FlavorName)
	assert.Equal(t, entity.AvailabilityUnavailable, rec.Available)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"STORE_NOT_FOUND","message":"找不到該門市"},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	_, err = client.GetStore(t.Context(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "STORE_NOT_FOUND", apiErr.Code)
	assert.False(t, apiErr.Retryable)
}

func TestClient_APIErrorRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"WRITE_CONFLICT","message":"供貨狀態更新衝突","retryable":true},"meta":{"request_id":"r"}}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	_, err = client.SetAvailability(t.Context(), 5, "Vanille", entity.AvailabilityAvailable)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "WRITE_CONFLICT", apiErr.Code)
	assert.True(t, apiErr.Retryable)
}

func TestClient_ListFlavors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "van", r.URL.Query().Get("q"))
		writeData(t, w, http.StatusOK, []map[string]any{{"name": "Vanille"}})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	flavors, err := client.ListFlavors(t.Context(), "van")
	require.NoError(t, err)
	require.Len(t, flavors, 1)
	assert.Equal(t, "Vanille", flavors[0].Name)
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080/api")
	assert.Error(t, err)
}
