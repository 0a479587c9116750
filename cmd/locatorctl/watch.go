package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/mapsync"

	"github.com/pkg/errors"
)

type watchOptions struct {
	in        io.Reader
	out       io.Writer
	settle    time.Duration
	threshold int
	clock     mapsync.Clock
}

// watchEvent is one stdin line. Exactly one of the groups is expected:
// a viewport (bounds + zoom), a flavor filter, a pause or a snapshot request.
type watchEvent struct {
	South    *float64 `json:"south"`
	West     *float64 `json:"west"`
	North    *float64 `json:"north"`
	East     *float64 `json:"east"`
	Zoom     *int     `json:"zoom"`
	Flavors  []string `json:"flavors"`
	Sleep    string   `json:"sleep"`
	Snapshot bool     `json:"snapshot"`
}

func (e *watchEvent) viewport() (entity.BBox, int, bool) {
	if e.South == nil || e.West == nil || e.North == nil || e.East == nil || e.Zoom == nil {
		return entity.BBox{}, 0, false
	}

	return entity.BBox{South: *e.South, West: *e.West, North: *e.North, East: *e.East}, *e.Zoom, true
}

type watchOutput struct {
	Event     string                  `json:"event"`
	Clusters  []entity.ClusterSummary `json:"clusters,omitempty"`
	Stores    []watchStore            `json:"stores,omitempty"`
	Truncated bool                    `json:"truncated,omitempty"`
	Error     string                  `json:"error,omitempty"`
	Snapshot  *watchSnapshot          `json:"snapshot,omitempty"`
}

type watchStore struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Flavors int     `json:"flavors"`
}

type watchSnapshot struct {
	State     string   `json:"state"`
	Mode      string   `json:"mode"`
	Zoom      int      `json:"zoom"`
	Flavors   []string `json:"flavors,omitempty"`
	Clusters  int      `json:"clusters"`
	Stores    int      `json:"stores"`
	Committed uint64   `json:"committed"`
	Issued    uint64   `json:"issued"`
	Discarded int      `json:"discarded"`
	LastError string   `json:"last_error,omitempty"`
}

// lineListener writes controller callbacks as JSON lines.
type lineListener struct {
	*jsonLines
}

func newLineListener(out io.Writer, logger *slog.Logger) *lineListener {
	return &lineListener{jsonLines: newJSONLines(out, logger)}
}

func (l *lineListener) OnClustersFetched(clusters []entity.ClusterSummary) {
	l.write(watchOutput{Event: "clusters", Clusters: clusters})
}

func (l *lineListener) OnStoresFetched(stores []entity.StoreAvailability, truncated bool) {
	out := make([]watchStore, 0, len(stores))
	for _, s := range stores {
		available := 0
		for _, record := range s.Availability {
			if record.Available == entity.AvailabilityAvailable {
				available++
			}
		}
		out = append(out, watchStore{
			ID:      s.Store.ID,
			Name:    s.Store.Name,
			Lat:     s.Store.Lat,
			Lon:     s.Store.Lon,
			Flavors: available,
		})
	}

	l.write(watchOutput{Event: "stores", Stores: out, Truncated: truncated})
}

func (l *lineListener) OnError(err error) {
	l.write(watchOutput{Event: "error", Error: err.Error()})
}

func runWatch(ctx context.Context, b *backend, opts watchOptions) error {
	clock := opts.clock
	if clock == nil {
		clock = mapsync.RealClock()
	}

	listener := newLineListener(opts.out, b.logger)
	cfg := mapsync.DefaultConfig()
	cfg.ClusterZoomThreshold = opts.threshold

	controller := mapsync.NewController(mapsync.ControllerParams{
		Config:   cfg,
		Clock:    clock,
		Fetcher:  b.fetcher,
		Listener: listener,
		Logger:   b.logger,
	})
	defer controller.Close()

	scanner := bufio.NewScanner(opts.in)
	for line := 1; scanner.Scan(); line++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var event watchEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return errors.Wrapf(err, "line %d: invalid event", line)
		}

		if err := applyWatchEvent(ctx, controller, listener, &event); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if err := listener.Err(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read events")
	}

	if err := sleepCtx(ctx, opts.settle); err != nil {
		return err
	}

	listener.write(watchOutput{Event: "snapshot", Snapshot: toWatchSnapshot(controller.Snapshot())})

	return listener.Err()
}

func applyWatchEvent(ctx context.Context, controller *mapsync.Controller, listener *lineListener, event *watchEvent) error {
	switch {
	case event.Snapshot:
		listener.write(watchOutput{Event: "snapshot", Snapshot: toWatchSnapshot(controller.Snapshot())})
	case event.Sleep != "":
		d, err := time.ParseDuration(event.Sleep)
		if err != nil {
			return errors.Wrap(err, "invalid sleep duration")
		}

		return sleepCtx(ctx, d)
	case event.Flavors != nil:
		controller.SetFlavors(event.Flavors)
	default:
		bbox, zoom, ok := event.viewport()
		if !ok {
			return errors.New("event needs south, west, north, east and zoom")
		}
		controller.OnViewportChanged(bbox, zoom)
	}

	return nil
}

func toWatchSnapshot(s mapsync.Snapshot) *watchSnapshot {
	out := &watchSnapshot{
		State:     s.State.String(),
		Mode:      string(s.Mode),
		Zoom:      s.Zoom,
		Flavors:   s.Flavors,
		Clusters:  len(s.Clusters),
		Stores:    len(s.Stores),
		Committed: s.Committed,
		Issued:    s.Issued,
		Discarded: s.Discarded,
	}
	if s.LastError != nil {
		out.LastError = s.LastError.Error()
	}

	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
