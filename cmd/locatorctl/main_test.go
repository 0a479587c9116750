package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*backend, *memory.Dataset, *entity.Store) {
	t.Helper()

	data := memory.NewDataset()
	store, err := data.AddStore("Glacier Bastille", "1 rue de la Roquette", 48.853, 2.370)
	require.NoError(t, err)
	_, err = data.AddStore("Glacier Marais", "12 rue des Archives", 48.858, 2.355)
	require.NoError(t, err)
	require.NoError(t, data.AddFlavor("Pistache", nil))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newMemoryBackend(data, "cli-session", logger), data, store
}

func decodeLines(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(out)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func TestRunCycle_CommitsEachTap(t *testing.T) {
	b, data, store := newTestBackend(t)
	var out bytes.Buffer

	err := runCycle(context.Background(), b, cycleOptions{
		out:     &out,
		storeID: store.ID,
		flavor:  "Pistache",
		taps:    2,
		window:  5 * time.Millisecond,
	})
	require.NoError(t, err)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 4)
	assert.Equal(t, "cycle", lines[0]["reason"])
	assert.Equal(t, "available", lines[0]["status"])
	assert.Equal(t, "commit", lines[1]["reason"])
	assert.Equal(t, "unavailable", lines[3]["status"])

	records, err := memory.NewAvailabilityRepository(data).FindAvailabilityByStore(context.Background(), store.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.AvailabilityUnavailable, records[0].Available)
}

func TestRunCycle_UndoSkipsWrite(t *testing.T) {
	b, data, store := newTestBackend(t)
	var out bytes.Buffer

	err := runCycle(context.Background(), b, cycleOptions{
		out:     &out,
		storeID: store.ID,
		flavor:  "Pistache",
		taps:    1,
		undo:    true,
		window:  time.Minute,
	})
	require.NoError(t, err)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 2)
	assert.Equal(t, "undo", lines[1]["reason"])
	assert.Equal(t, "unknown", lines[1]["status"])

	records, err := memory.NewAvailabilityRepository(data).FindAvailabilityByStore(context.Background(), store.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRunCycle_RejectsZeroTaps(t *testing.T) {
	b, _, store := newTestBackend(t)

	err := runCycle(context.Background(), b, cycleOptions{out: io.Discard, storeID: store.ID, flavor: "Pistache"})
	assert.Error(t, err)
}

func TestRunWatch_FetchesAfterDebounce(t *testing.T) {
	b, _, _ := newTestBackend(t)
	var out bytes.Buffer

	in := strings.NewReader(`{"south":48.80,"west":2.20,"north":48.95,"east":2.45,"zoom":12}` + "\n")
	err := runWatch(context.Background(), b, watchOptions{
		in:        in,
		out:       &out,
		settle:    600 * time.Millisecond,
		threshold: 13,
	})
	require.NoError(t, err)

	lines := decodeLines(t, &out)
	require.Len(t, lines, 2)
	assert.Equal(t, "clusters", lines[0]["event"])
	assert.NotEmpty(t, lines[0]["clusters"])

	snapshot, ok := lines[1]["snapshot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "clusters", snapshot["mode"])
	assert.EqualValues(t, 1, snapshot["committed"])
}

func TestRunWatch_RejectsIncompleteViewport(t *testing.T) {
	b, _, _ := newTestBackend(t)

	err := runWatch(context.Background(), b, watchOptions{
		in:  strings.NewReader(`{"south":48.80,"zoom":12}` + "\n"),
		out: io.Discard,
	})
	assert.ErrorContains(t, err, "line 1")
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRunWatch_ReportsOutputFailure(t *testing.T) {
	b, _, _ := newTestBackend(t)

	err := runWatch(context.Background(), b, watchOptions{
		in:  strings.NewReader(`{"snapshot":true}` + "\n" + `{"sleep":"1h"}` + "\n"),
		out: brokenPipe{},
	})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestRunCycle_ReportsOutputFailure(t *testing.T) {
	b, _, store := newTestBackend(t)

	err := runCycle(context.Background(), b, cycleOptions{
		out:     brokenPipe{},
		storeID: store.ID,
		flavor:  "Pistache",
		taps:    1,
		window:  5 * time.Millisecond,
	})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestJSONLines_KeepsFirstError(t *testing.T) {
	lines := newJSONLines(brokenPipe{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	lines.write(map[string]int{"n": 1})
	first := lines.Err()
	lines.write(map[string]int{"n": 2})

	require.ErrorIs(t, first, io.ErrClosedPipe)
	assert.Same(t, first, lines.Err())
}

func TestHashAdminPassword(t *testing.T) {
	hash, err := hashAdminPassword("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	_, err = hashAdminPassword("")
	assert.Error(t, err)
}
