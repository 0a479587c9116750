package mapsync

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

const (
	defaultDebounce             = 160 * time.Millisecond
	defaultThrottle             = 450 * time.Millisecond
	defaultMoveRatio            = 0.12
	defaultSpanRatio            = 0.02
	defaultClusterZoomThreshold = 13
)

// ErrClosed is returned by calls made after Close.
var ErrClosed = errors.New("mapsync: controller closed")

// State is the phase of the sync state machine.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateFetching
)

func (s State) String() string {
	switch s {
	case StateDebouncing:
		return "debouncing"
	case StateFetching:
		return "fetching"
	default:
		return "idle"
	}
}

// Config tunes the controller. Zero fields take the defaults.
type Config struct {
	Debounce             time.Duration
	Throttle             time.Duration
	MoveRatio            float64
	SpanRatio            float64
	ClusterZoomThreshold int
}

// DefaultConfig returns the tuning used by the public map.
func DefaultConfig() Config {
	return Config{
		Debounce:             defaultDebounce,
		Throttle:             defaultThrottle,
		MoveRatio:            defaultMoveRatio,
		SpanRatio:            defaultSpanRatio,
		ClusterZoomThreshold: defaultClusterZoomThreshold,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	if c.Throttle <= 0 {
		c.Throttle = d.Throttle
	}
	if c.MoveRatio <= 0 {
		c.MoveRatio = d.MoveRatio
	}
	if c.SpanRatio <= 0 {
		c.SpanRatio = d.SpanRatio
	}
	if c.ClusterZoomThreshold <= 0 {
		c.ClusterZoomThreshold = d.ClusterZoomThreshold
	}

	return c
}

// ModeFor returns clusters at or below the threshold zoom and points above.
func (c Config) ModeFor(zoom int) entity.ViewMode {
	if zoom <= c.ClusterZoomThreshold {
		return entity.ModeClusters
	}

	return entity.ModePoints
}

// Result is one aggregation response.
type Result struct {
	Mode      entity.ViewMode
	CellSize  float64
	Clusters  []entity.ClusterSummary
	Stores    []entity.StoreAvailability
	Truncated bool
}

// Fetcher runs one aggregation request.
type Fetcher interface {
	Fetch(ctx context.Context, query entity.ViewportQuery) (*Result, error)
}

// Listener receives committed results. Calls are made from the controller
// loop and must not call back into the controller synchronously.
type Listener interface {
	OnClustersFetched(clusters []entity.ClusterSummary)
	OnStoresFetched(stores []entity.StoreAvailability, truncated bool)
	OnError(err error)
}

// Snapshot is the committed display state plus loop counters.
type Snapshot struct {
	State     State
	BBox      *entity.BBox
	Zoom      int
	Flavors   []string
	Mode      entity.ViewMode
	Clusters  []entity.ClusterSummary
	Stores    []entity.StoreAvailability
	Truncated bool
	Committed uint64 // sequence of the displayed result, 0 before the first commit
	Issued    uint64 // sequence of the latest request
	Discarded int    // superseded responses dropped
	LastError error
}

// Controller turns a stream of viewport events into sequence-fenced fetches.
// All bookkeeping is owned by a single loop goroutine.
type Controller struct {
	cfg      Config
	clock    Clock
	fetcher  Fetcher
	listener Listener
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	events chan func()
	done   chan struct{}
	once   sync.Once

	// loop-owned
	viewport     *entity.BBox
	zoom         int
	flavors      []string
	timer        Timer
	timerGen     uint64
	seq          uint64
	answered     uint64
	last         *fetchRecord
	throttleFrom time.Time
	display      Snapshot
}

// ControllerParams holds the collaborators of a Controller.
type ControllerParams struct {
	Config   Config
	Clock    Clock
	Fetcher  Fetcher
	Listener Listener
	Logger   *slog.Logger
}

// NewController starts the loop goroutine. Call Close to stop it.
func NewController(params ControllerParams) *Controller {
	clock := params.Clock
	if clock == nil {
		clock = RealClock()
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	listener := params.Listener
	if listener == nil {
		listener = nopListener{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		cfg:      params.Config.withDefaults(),
		clock:    clock,
		fetcher:  params.Fetcher,
		listener: listener,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan func(), 64),
		done:     make(chan struct{}),
	}
	go c.run()

	return c
}

func (c *Controller) run() {
	for {
		select {
		case fn := <-c.events:
			fn()
		case <-c.done:
			return
		}
	}
}

// post hands fn to the loop. It reports false once the controller is closed.
func (c *Controller) post(fn func()) bool {
	select {
	case c.events <- fn:
		return true
	case <-c.done:
		return false
	}
}

// do runs fn on the loop and waits for it to finish.
func (c *Controller) do(fn func()) bool {
	finished := make(chan struct{})
	if !c.post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}

	select {
	case <-finished:
		return true
	case <-c.done:
		return false
	}
}

// Close stops the loop. In-flight responses are dropped.
func (c *Controller) Close() {
	c.once.Do(func() {
		c.cancel()
		close(c.done)
	})
}

// OnViewportChanged records the viewport and (re)arms the debounce timer.
// Like SetFlavors it returns once the loop has taken the event.
func (c *Controller) OnViewportChanged(bbox entity.BBox, zoom int) {
	c.do(func() {
		c.viewport = &bbox
		c.zoom = zoom
		c.arm(c.cfg.Debounce)
	})
}

// SetFlavors changes the required flavors. A different set fetches at once,
// bypassing the throttle window and the movement check.
func (c *Controller) SetFlavors(flavors []string) {
	normalized := entity.NormalizeFlavors(flavors)
	c.do(func() {
		if entity.FlavorsKey(normalized) == entity.FlavorsKey(c.flavors) {
			return
		}
		c.flavors = normalized
		if c.viewport == nil {
			return
		}
		c.disarm()
		c.issue("flavors")
		c.throttleFrom = c.clock.Now()
	})
}

// Snapshot returns a copy of the display state.
func (c *Controller) Snapshot() Snapshot {
	var snap Snapshot
	if !c.do(func() { snap = c.snapshot() }) {
		return Snapshot{LastError: ErrClosed}
	}

	return snap
}

func (c *Controller) snapshot() Snapshot {
	snap := c.display
	snap.State = c.state()
	snap.Issued = c.seq
	snap.Zoom = c.zoom
	snap.Flavors = slices.Clone(c.flavors)
	if c.viewport != nil {
		bbox := *c.viewport
		snap.BBox = &bbox
	}
	snap.Clusters = slices.Clone(c.display.Clusters)
	snap.Stores = slices.Clone(c.display.Stores)

	return snap
}

func (c *Controller) state() State {
	switch {
	case c.timer != nil:
		return StateDebouncing
	case c.inFlight():
		return StateFetching
	default:
		return StateIdle
	}
}

// inFlight reports whether the latest request has not been answered yet.
func (c *Controller) inFlight() bool {
	return c.seq != 0 && c.seq != c.answered
}

func (c *Controller) arm(d time.Duration) {
	c.disarm()
	c.timerGen++
	gen := c.timerGen
	c.timer = c.clock.AfterFunc(d, func() {
		c.post(func() { c.onTimer(gen) })
	})
}

func (c *Controller) disarm() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) onTimer(gen uint64) {
	// A timer that fired while being replaced is stale.
	if gen != c.timerGen || c.timer == nil {
		return
	}
	c.timer = nil

	if c.viewport == nil {
		return
	}

	now := c.clock.Now()
	d := shouldRefetch(c.cfg, now, c.last, c.throttleFrom, candidate{
		bbox:       *c.viewport,
		zoom:       c.zoom,
		mode:       c.cfg.ModeFor(c.zoom),
		flavorsKey: entity.FlavorsKey(c.flavors),
	})

	switch d.verdict {
	case verdictWait:
		c.arm(d.wait)
	case verdictFetch:
		c.issue(d.reason)
	default:
		c.logger.Debug("Viewport refetch suppressed", slog.String("reason", d.reason))
	}
}

// issue sends the current viewport as a new request on its own goroutine.
func (c *Controller) issue(reason string) {
	c.seq++
	seq := c.seq
	zoom := c.zoom
	query := entity.ViewportQuery{
		BBox:    *c.viewport,
		Zoom:    &zoom,
		Flavors: slices.Clone(c.flavors),
		Mode:    c.cfg.ModeFor(c.zoom),
	}

	c.logger.Debug("Viewport fetch issued",
		slog.Uint64("seq", seq),
		slog.String("reason", reason),
		slog.String("mode", string(query.Mode)),
		slog.Int("zoom", c.zoom),
	)

	go func() {
		result, err := c.fetcher.Fetch(c.ctx, query)
		c.post(func() { c.onResponse(seq, query, result, err) })
	}()
}

func (c *Controller) onResponse(seq uint64, query entity.ViewportQuery, result *Result, err error) {
	if seq != c.seq {
		c.display.Discarded++
		c.logger.Debug("Superseded viewport response dropped", slog.Uint64("seq", seq), slog.Uint64("latest", c.seq))

		return
	}

	c.answered = seq
	now := c.clock.Now()
	c.throttleFrom = now

	if err == nil && result == nil {
		err = errors.New("empty aggregation result")
	}
	if err != nil {
		c.display.LastError = err
		c.logger.Warn("Viewport fetch failed", slog.Uint64("seq", seq), slog.Any("error", err))
		c.listener.OnError(err)

		return
	}

	c.display.Committed = seq
	c.display.Mode = result.Mode
	c.display.LastError = nil
	c.display.Truncated = result.Truncated
	if result.Mode == entity.ModeClusters {
		c.display.Clusters = result.Clusters
		c.display.Stores = nil
		c.listener.OnClustersFetched(result.Clusters)
	} else {
		c.display.Stores = result.Stores
		c.display.Clusters = nil
		c.listener.OnStoresFetched(result.Stores, result.Truncated)
	}

	c.last = &fetchRecord{
		completedAt: now,
		zoom:        *query.Zoom,
		flavorsKey:  entity.FlavorsKey(query.Flavors),
		boundsKey:   query.BBox.Key(),
		center:      query.BBox.Center(),
		span:        query.BBox.Span(),
		mode:        query.Mode,
	}
}

type nopListener struct{}

func (nopListener) OnClustersFetched([]entity.ClusterSummary)       {}
func (nopListener) OnStoresFetched([]entity.StoreAvailability, bool) {}
func (nopListener) OnError(error)                                    {}
