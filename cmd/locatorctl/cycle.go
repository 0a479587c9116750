package main

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/mapsync"

	"github.com/pkg/errors"
)

type cycleOptions struct {
	out     io.Writer
	storeID int64
	flavor  string
	taps    int
	undo    bool
	window  time.Duration
	clock   mapsync.Clock
}

type cycleLine struct {
	Store  int64  `json:"store_id"`
	Flavor string `json:"flavor"`
	Status string `json:"status"`
	Reason string `json:"reason"`
	Error  string `json:"error,omitempty"`
}

// runCycle taps the pair opts.taps times. Every tap but an undone last one is
// committed before the next tap starts.
func runCycle(ctx context.Context, b *backend, opts cycleOptions) error {
	if opts.taps < 1 {
		return errors.New("--taps must be at least 1")
	}

	var (
		mu         sync.Mutex
		lines      = newJSONLines(opts.out, b.logger)
		rolledBack error
	)
	onChange := func(change mapsync.Change) {
		line := cycleLine{
			Store:  change.StoreID,
			Flavor: change.FlavorName,
			Status: change.Status.String(),
			Reason: string(change.Reason),
		}
		if change.Err != nil {
			line.Error = change.Err.Error()
			mu.Lock()
			rolledBack = change.Err
			mu.Unlock()
		}
		lines.write(line)
	}

	cycler := mapsync.NewCycler(mapsync.CyclerParams{
		Clock:      opts.clock,
		Writer:     b.writer,
		UndoWindow: opts.window,
		OnChange:   onChange,
		Logger:     b.logger,
	})

	detail, err := b.detail(ctx, opts.storeID)
	if err != nil {
		return errors.Wrap(err, "failed to load store")
	}
	cycler.Seed(opts.storeID, detail.Flavors)

	if !hasFlavor(detail.Flavors, opts.flavor) {
		b.logger.Warn("Flavor not listed for store", slog.Int64("store_id", opts.storeID), slog.String("flavor", opts.flavor))
	}

	for tap := 1; tap <= opts.taps; tap++ {
		if _, err := cycler.Cycle(opts.storeID, opts.flavor); err != nil {
			return errors.Wrapf(err, "tap %d", tap)
		}

		if opts.undo && tap == opts.taps {
			if !cycler.Undo(opts.storeID, opts.flavor) {
				b.logger.Warn("Undo window already closed")
			}
		}

		cycler.Wait()

		mu.Lock()
		err := rolledBack
		mu.Unlock()
		if err != nil {
			return errors.Wrap(err, "write rolled back")
		}
		if err := lines.Err(); err != nil {
			return err
		}
	}

	return nil
}

func hasFlavor(flavors []entity.FlavorAvailability, name string) bool {
	for _, f := range flavors {
		if f.Name == name {
			return true
		}
	}

	return false
}
