package mapsync

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	query entity.ViewportQuery
	reply chan fetchReply
}

type fetchReply struct {
	result *Result
	err    error
}

// scriptedFetcher blocks every call until the test replies to it.
type scriptedFetcher struct {
	calls chan *fetchCall
}

func newScriptedFetcher() *scriptedFetcher {
	return &scriptedFetcher{calls: make(chan *fetchCall, 16)}
}

func (f *scriptedFetcher) Fetch(ctx context.Context, query entity.ViewportQuery) (*Result, error) {
	call := &fetchCall{query: query, reply: make(chan fetchReply, 1)}
	f.calls <- call

	select {
	case r := <-call.reply:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *scriptedFetcher) next(t *testing.T) *fetchCall {
	t.Helper()
	select {
	case call := <-f.calls:
		return call
	case <-time.After(2 * time.Second):
		require.FailNow(t, "expected a fetch call")

		return nil
	}
}

type recordingListener struct {
	mu       sync.Mutex
	clusters [][]entity.ClusterSummary
	stores   [][]entity.StoreAvailability
	errs     []error
}

func (l *recordingListener) OnClustersFetched(clusters []entity.ClusterSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clusters = append(l.clusters, clusters)
}

func (l *recordingListener) OnStoresFetched(stores []entity.StoreAvailability, _ bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stores = append(l.stores, stores)
}

func (l *recordingListener) OnError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *recordingListener) errCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.errs)
}

type harness struct {
	clock    *fakeClock
	fetcher  *scriptedFetcher
	listener *recordingListener
	ctrl     *Controller
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		clock:    newFakeClock(),
		fetcher:  newScriptedFetcher(),
		listener: &recordingListener{},
	}
	h.ctrl = NewController(ControllerParams{
		Config:   DefaultConfig(),
		Clock:    h.clock,
		Fetcher:  h.fetcher,
		Listener: h.listener,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(h.ctrl.Close)

	return h
}

func paris(dLon float64) entity.BBox {
	return entity.BBox{South: 48.80, West: 2.30 + dLon, North: 48.90, East: 2.40 + dLon}
}

func clusterResult(n int) *Result {
	return &Result{Mode: entity.ModeClusters, Clusters: []entity.ClusterSummary{{Count: n}}}
}

func (h *harness) waitCommitted(t *testing.T, seq uint64) Snapshot {
	t.Helper()
	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = h.ctrl.Snapshot()

		return snap.Committed == seq
	}, 2*time.Second, 5*time.Millisecond)

	return snap
}

func TestController_DebounceCollapsesBursts(t *testing.T) {
	h := newHarness(t)

	for i := range 10 {
		h.ctrl.OnViewportChanged(paris(float64(i)*0.001), 12)
		h.clock.Advance(50 * time.Millisecond)
	}
	assert.Equal(t, uint64(0), h.ctrl.Snapshot().Issued)
	assert.Equal(t, StateDebouncing, h.ctrl.Snapshot().State)

	h.clock.Advance(200 * time.Millisecond)
	snap := h.ctrl.Snapshot()
	assert.Equal(t, uint64(1), snap.Issued)

	call := h.fetcher.next(t)
	assert.Equal(t, paris(0.009), call.query.BBox)
	assert.Equal(t, entity.ModeClusters, call.query.Mode)
	require.NotNil(t, call.query.Zoom)
	assert.Equal(t, 12, *call.query.Zoom)
}

func TestController_LastRequestWins(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 12)
	h.clock.Advance(200 * time.Millisecond)
	first := h.fetcher.next(t)

	// No commit yet, so the second viewport is evaluated as a first fetch.
	h.ctrl.OnViewportChanged(paris(0.5), 12)
	h.clock.Advance(200 * time.Millisecond)
	second := h.fetcher.next(t)
	assert.Equal(t, uint64(2), h.ctrl.Snapshot().Issued)

	second.reply <- fetchReply{result: clusterResult(2)}
	snap := h.waitCommitted(t, 2)
	require.Len(t, snap.Clusters, 1)
	assert.Equal(t, 2, snap.Clusters[0].Count)

	first.reply <- fetchReply{result: clusterResult(1)}
	require.Eventually(t, func() bool { return h.ctrl.Snapshot().Discarded == 1 }, 2*time.Second, 5*time.Millisecond)

	snap = h.ctrl.Snapshot()
	assert.Equal(t, uint64(2), snap.Committed)
	assert.Equal(t, 2, snap.Clusters[0].Count)
	assert.Equal(t, StateIdle, snap.State)
}

func TestController_ThrottleDefersTrailingViewport(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 12)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: clusterResult(1)}
	h.waitCommitted(t, 1)

	// Significant pan right after the commit: debounce ends 160ms into the
	// 450ms window, so the evaluation is re-armed for the remaining 290ms.
	h.ctrl.OnViewportChanged(paris(0.05), 12)
	h.clock.Advance(160 * time.Millisecond)
	snap := h.ctrl.Snapshot()
	assert.Equal(t, uint64(1), snap.Issued)
	assert.Equal(t, StateDebouncing, snap.State)

	h.clock.Advance(289 * time.Millisecond)
	assert.Equal(t, uint64(1), h.ctrl.Snapshot().Issued)

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, uint64(2), h.ctrl.Snapshot().Issued)
	assert.Equal(t, paris(0.05), h.fetcher.next(t).query.BBox)
}

func TestController_SuppressesInsignificantMovement(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 15)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: &Result{Mode: entity.ModePoints}}
	h.waitCommitted(t, 1)
	h.clock.Advance(time.Second)

	h.ctrl.OnViewportChanged(paris(0.002), 15)
	h.clock.Advance(160 * time.Millisecond)
	assert.Equal(t, uint64(1), h.ctrl.Snapshot().Issued)

	// Crossing the cluster threshold always refetches.
	h.ctrl.OnViewportChanged(paris(0.002), 13)
	h.clock.Advance(160 * time.Millisecond)
	assert.Equal(t, uint64(2), h.ctrl.Snapshot().Issued)
	assert.Equal(t, entity.ModeClusters, h.fetcher.next(t).query.Mode)
}

func TestController_FilterChangeFetchesImmediately(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 12)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: clusterResult(3)}
	h.waitCommitted(t, 1)

	// Inside the throttle window and without any movement.
	h.ctrl.SetFlavors([]string{"Pistache", "Vanille", "Pistache"})
	snap := h.ctrl.Snapshot()
	assert.Equal(t, uint64(2), snap.Issued)
	assert.Equal(t, []string{"Pistache", "Vanille"}, snap.Flavors)

	call := h.fetcher.next(t)
	assert.Equal(t, []string{"Pistache", "Vanille"}, call.query.Flavors)

	// Same set in another order is not a change.
	h.ctrl.SetFlavors([]string{"Vanille", "Pistache"})
	assert.Equal(t, uint64(2), h.ctrl.Snapshot().Issued)
}

func TestController_ErrorKeepsDisplayedResult(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 12)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: clusterResult(4)}
	h.waitCommitted(t, 1)
	h.clock.Advance(time.Second)

	h.ctrl.OnViewportChanged(paris(1), 12)
	h.clock.Advance(160 * time.Millisecond)
	boom := errors.New("backend unavailable")
	h.fetcher.next(t).reply <- fetchReply{err: boom}

	require.Eventually(t, func() bool { return h.listener.errCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	snap := h.ctrl.Snapshot()
	assert.Equal(t, uint64(1), snap.Committed)
	assert.Equal(t, 4, snap.Clusters[0].Count)
	assert.ErrorIs(t, snap.LastError, boom)
	assert.Equal(t, StateIdle, snap.State)
}

func TestController_ClustersAndStoresReplaceEachOther(t *testing.T) {
	h := newHarness(t)

	h.ctrl.OnViewportChanged(paris(0), 12)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: clusterResult(2)}
	h.waitCommitted(t, 1)
	h.clock.Advance(time.Second)

	h.ctrl.OnViewportChanged(paris(0), 16)
	h.clock.Advance(160 * time.Millisecond)
	h.fetcher.next(t).reply <- fetchReply{result: &Result{
		Mode:   entity.ModePoints,
		Stores: []entity.StoreAvailability{{Store: entity.Store{ID: 1}}, {Store: entity.Store{ID: 2}}},
	}}
	snap := h.waitCommitted(t, 2)

	assert.Equal(t, entity.ModePoints, snap.Mode)
	assert.Len(t, snap.Stores, 2)
	assert.Empty(t, snap.Clusters)
}

func TestController_ClosedSnapshot(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Close()

	assert.ErrorIs(t, h.ctrl.Snapshot().LastError, ErrClosed)
}
