package mapsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

const (
	defaultUndoWindow   = 3 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// ErrWritePending is returned when a (store, flavor) pair already has a
// write waiting for its undo window or for the server.
var ErrWritePending = errors.New("mapsync: write already pending")

// Writer persists one availability report.
type Writer interface {
	SetAvailability(ctx context.Context, storeID int64, flavorName string, status entity.Availability) (*entity.AvailabilityRecord, error)
}

// ChangeReason says why a local status changed.
type ChangeReason string

const (
	ReasonCycle    ChangeReason = "cycle"
	ReasonUndo     ChangeReason = "undo"
	ReasonCommit   ChangeReason = "commit"
	ReasonRollback ChangeReason = "rollback"
)

// Change is a local status transition reported to the UI.
type Change struct {
	StoreID    int64
	FlavorName string
	Status     entity.Availability
	Reason     ChangeReason
	Err        error // set for ReasonRollback
}

type cycleKey struct {
	storeID int64
	flavor  string
}

type pendingWrite struct {
	prev       entity.Availability
	next       entity.Availability
	timer      Timer
	committing bool
}

// Cycler applies status cycles optimistically and commits them after an
// undo window. A failed write restores the previous status.
type Cycler struct {
	clock        Clock
	writer       Writer
	undoWindow   time.Duration
	writeTimeout time.Duration
	onChange     func(Change)
	logger       *slog.Logger

	mu      sync.Mutex
	states  map[cycleKey]entity.Availability
	pending map[cycleKey]*pendingWrite
	wg      sync.WaitGroup
}

// CyclerParams holds the collaborators of a Cycler.
type CyclerParams struct {
	Clock        Clock
	Writer       Writer
	UndoWindow   time.Duration
	WriteTimeout time.Duration
	OnChange     func(Change)
	Logger       *slog.Logger
}

// NewCycler is the constructor for Cycler.
func NewCycler(params CyclerParams) *Cycler {
	c := &Cycler{
		clock:        params.Clock,
		writer:       params.Writer,
		undoWindow:   params.UndoWindow,
		writeTimeout: params.WriteTimeout,
		onChange:     params.OnChange,
		logger:       params.Logger,
		states:       make(map[cycleKey]entity.Availability),
		pending:      make(map[cycleKey]*pendingWrite),
	}
	if c.clock == nil {
		c.clock = RealClock()
	}
	if c.undoWindow <= 0 {
		c.undoWindow = defaultUndoWindow
	}
	if c.writeTimeout <= 0 {
		c.writeTimeout = defaultWriteTimeout
	}
	if c.onChange == nil {
		c.onChange = func(Change) {}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Seed loads the known statuses of a store, typically from its detail view.
// Pairs with a pending write keep their optimistic value.
func (c *Cycler) Seed(storeID int64, flavors []entity.FlavorAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, f := range flavors {
		key := cycleKey{storeID: storeID, flavor: f.Name}
		if _, busy := c.pending[key]; busy {
			continue
		}
		c.states[key] = f.Available
	}
}

// Status returns the local status of a pair; unknown when never seen.
func (c *Cycler) Status(storeID int64, flavorName string) entity.Availability {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.states[cycleKey{storeID: storeID, flavor: flavorName}]
}

// Pending reports whether the pair has a write in progress.
func (c *Cycler) Pending(storeID int64, flavorName string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.pending[cycleKey{storeID: storeID, flavor: flavorName}]

	return ok
}

// Cycle moves the pair to its next status immediately and schedules the
// write after the undo window.
func (c *Cycler) Cycle(storeID int64, flavorName string) (entity.Availability, error) {
	key := cycleKey{storeID: storeID, flavor: flavorName}

	c.mu.Lock()
	if _, busy := c.pending[key]; busy {
		c.mu.Unlock()

		return c.Status(storeID, flavorName), ErrWritePending
	}

	prev := c.states[key]
	next := prev.Next()
	c.states[key] = next
	p := &pendingWrite{prev: prev, next: next}
	c.pending[key] = p
	c.wg.Add(1)
	p.timer = c.clock.AfterFunc(c.undoWindow, func() { c.commit(key, p) })
	c.mu.Unlock()

	c.onChange(Change{StoreID: storeID, FlavorName: flavorName, Status: next, Reason: ReasonCycle})

	return next, nil
}

// Undo cancels a write still inside its undo window and restores the
// previous status. It reports false when there is nothing to undo.
func (c *Cycler) Undo(storeID int64, flavorName string) bool {
	key := cycleKey{storeID: storeID, flavor: flavorName}

	c.mu.Lock()
	p, ok := c.pending[key]
	if !ok || p.committing || !p.timer.Stop() {
		c.mu.Unlock()

		return false
	}
	delete(c.pending, key)
	c.states[key] = p.prev
	c.mu.Unlock()
	c.wg.Done()

	c.onChange(Change{StoreID: storeID, FlavorName: flavorName, Status: p.prev, Reason: ReasonUndo})

	return true
}

// Wait blocks until every scheduled write has been committed, rolled back
// or undone.
func (c *Cycler) Wait() {
	c.wg.Wait()
}

func (c *Cycler) commit(key cycleKey, p *pendingWrite) {
	defer c.wg.Done()

	c.mu.Lock()
	if c.pending[key] != p {
		c.mu.Unlock()

		return
	}
	p.committing = true
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.writeTimeout)
	defer cancel()

	record, err := c.writer.SetAvailability(ctx, key.storeID, key.flavor, p.next)

	c.mu.Lock()
	delete(c.pending, key)
	change := Change{StoreID: key.storeID, FlavorName: key.flavor}
	if err != nil {
		c.states[key] = p.prev
		change.Status = p.prev
		change.Reason = ReasonRollback
		change.Err = err
	} else {
		status := p.next
		if record != nil {
			status = record.Available
		}
		c.states[key] = status
		change.Status = status
		change.Reason = ReasonCommit
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Availability write rolled back",
			slog.Int64("store_id", key.storeID),
			slog.String("flavor", key.flavor),
			slog.Any("error", err),
		)
	}
	c.onChange(change)
}
