package mapsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	writes []entity.AvailabilityRecord
	err    error
}

func (w *fakeWriter) SetAvailability(_ context.Context, storeID int64, flavorName string, status entity.Availability) (*entity.AvailabilityRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return nil, w.err
	}
	rec := entity.AvailabilityRecord{StoreID: storeID, FlavorName: flavorName, Available: status}
	w.writes = append(w.writes, rec)

	return &rec, nil
}

func newTestCycler(writer Writer) (*Cycler, *fakeClock, *[]Change) {
	clock := newFakeClock()
	var changes []Change
	c := NewCycler(CyclerParams{
		Clock:  clock,
		Writer: writer,
		OnChange: func(ch Change) {
			changes = append(changes, ch)
		},
	})

	return c, clock, &changes
}

func TestCycler_CommitsAfterUndoWindow(t *testing.T) {
	writer := &fakeWriter{}
	c, clock, changes := newTestCycler(writer)

	next, err := c.Cycle(1, "Vanille")
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityAvailable, next)
	assert.Equal(t, entity.AvailabilityAvailable, c.Status(1, "Vanille"))
	assert.True(t, c.Pending(1, "Vanille"))

	clock.Advance(2999 * time.Millisecond)
	assert.Empty(t, writer.writes)

	clock.Advance(time.Millisecond)
	c.Wait()
	require.Len(t, writer.writes, 1)
	assert.Equal(t, entity.AvailabilityAvailable, writer.writes[0].Available)
	assert.False(t, c.Pending(1, "Vanille"))

	require.Len(t, *changes, 2)
	assert.Equal(t, ReasonCycle, (*changes)[0].Reason)
	assert.Equal(t, ReasonCommit, (*changes)[1].Reason)
}

func TestCycler_RejectsSecondCycleWhilePending(t *testing.T) {
	c, clock, _ := newTestCycler(&fakeWriter{})
	c.Seed(1, []entity.FlavorAvailability{{Name: "Pistache", Available: entity.AvailabilityAvailable}})

	next, err := c.Cycle(1, "Pistache")
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityUnavailable, next)

	status, err := c.Cycle(1, "Pistache")
	assert.ErrorIs(t, err, ErrWritePending)
	assert.Equal(t, entity.AvailabilityUnavailable, status)

	// Other pairs are independent.
	_, err = c.Cycle(1, "Vanille")
	require.NoError(t, err)

	clock.Advance(3 * time.Second)
	c.Wait()

	next, err = c.Cycle(1, "Pistache")
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityAvailable, next)
}

func TestCycler_Undo(t *testing.T) {
	writer := &fakeWriter{}
	c, clock, changes := newTestCycler(writer)
	c.Seed(2, []entity.FlavorAvailability{{Name: "Fraise", Available: entity.AvailabilityUnavailable}})

	_, err := c.Cycle(2, "Fraise")
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityAvailable, c.Status(2, "Fraise"))

	assert.True(t, c.Undo(2, "Fraise"))
	assert.Equal(t, entity.AvailabilityUnavailable, c.Status(2, "Fraise"))
	assert.False(t, c.Undo(2, "Fraise"))

	clock.Advance(5 * time.Second)
	c.Wait()
	assert.Empty(t, writer.writes)
	assert.Equal(t, ReasonUndo, (*changes)[len(*changes)-1].Reason)
}

func TestCycler_RollsBackFailedWrite(t *testing.T) {
	boom := errors.New("store not found")
	c, clock, changes := newTestCycler(&fakeWriter{err: boom})

	_, err := c.Cycle(3, "Mangue")
	require.NoError(t, err)

	clock.Advance(3 * time.Second)
	c.Wait()

	assert.Equal(t, entity.AvailabilityUnknown, c.Status(3, "Mangue"))
	last := (*changes)[len(*changes)-1]
	assert.Equal(t, ReasonRollback, last.Reason)
	assert.Equal(t, entity.AvailabilityUnknown, last.Status)
	assert.ErrorIs(t, last.Err, boom)
	assert.False(t, c.Pending(3, "Mangue"))
}

func TestCycler_SeedKeepsPendingValue(t *testing.T) {
	c, _, _ := newTestCycler(&fakeWriter{})

	_, err := c.Cycle(4, "Citron")
	require.NoError(t, err)
	c.Seed(4, []entity.FlavorAvailability{{Name: "Citron", Available: entity.AvailabilityUnavailable}})

	assert.Equal(t, entity.AvailabilityAvailable, c.Status(4, "Citron"))
}
