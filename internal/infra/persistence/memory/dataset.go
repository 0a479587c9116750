// Package memory implements the repositories over an in-process dataset.
// It backs the offline mode of locatorctl and the usecase integration tests.
package memory

import (
	"encoding/json"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/grid"
	"locator/internal/errors"
)

// indexCellSize is the bucket edge of the spatial index in degrees.
const indexCellSize = 0.1

type recordKey struct {
	storeID int64
	flavor  string
}

type state struct {
	stores      map[int64]*entity.Store
	index       *grid.Index
	flavors     map[string]*entity.Flavor
	records     map[recordKey]entity.AvailabilityRecord
	logs        []*entity.UpdateLogEntry
	conns       []*entity.Connection
	nextStoreID int64
	nextLogID   int64
	nextConnID  int64
}

func newState() *state {
	return &state{
		stores:  make(map[int64]*entity.Store),
		index:   grid.NewIndex(indexCellSize),
		flavors: make(map[string]*entity.Flavor),
		records: make(map[recordKey]entity.AvailabilityRecord),
	}
}

// clone copies everything a transaction may mutate. Stores and the index are
// shared since no repository operation changes them.
func (s *state) clone() *state {
	return &state{
		stores:      s.stores,
		index:       s.index,
		flavors:     s.flavors,
		records:     maps.Clone(s.records),
		logs:        slices.Clone(s.logs),
		conns:       slices.Clone(s.conns),
		nextStoreID: s.nextStoreID,
		nextLogID:   s.nextLogID,
		nextConnID:  s.nextConnID,
	}
}

// Dataset holds stores, the flavor catalog and everything written against them.
// Writers take txMu before mu so they never interleave with a transaction.
type Dataset struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	state *state
	now   func() time.Time
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		state: newState(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source.
func (d *Dataset) SetClock(now func() time.Time) {
	unlock := d.lock()
	defer unlock()

	d.now = now
}

// AddStore inserts a store and returns it with its assigned id.
func (d *Dataset) AddStore(name, address string, lat, lon float64) (*entity.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store name is required")
	}
	if !entity.ValidCoordinate(lat, lon) {
		return nil, errors.Errorf("store %q has invalid coordinates (%v, %v)", name, lat, lon)
	}

	unlock := d.lock()
	defer unlock()

	d.state.nextStoreID++
	now := d.now()
	store := &entity.Store{
		ID:        d.state.nextStoreID,
		Name:      name,
		Address:   address,
		Lat:       lat,
		Lon:       lon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.state.stores[store.ID] = store
	d.state.index.Insert(grid.Point{ID: store.ID, Lat: lat, Lon: lon})

	return store, nil
}

// AddFlavor inserts or replaces a catalog entry.
func (d *Dataset) AddFlavor(name string, image *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("flavor name is required")
	}

	unlock := d.lock()
	defer unlock()

	d.state.flavors[name] = &entity.Flavor{Name: name, Image: image}

	return nil
}

type storeFile struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// LoadStores reads a JSON array of {name, address, lat, lon} and adds every
// entry. It returns the number of stores added.
func (d *Dataset) LoadStores(r io.Reader) (int, error) {
	var entries []storeFile
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, errors.Wrap(err, "failed to decode store file")
	}

	for i, entry := range entries {
		if _, err := d.AddStore(entry.Name, entry.Address, entry.Lat, entry.Lon); err != nil {
			return i, errors.Wrapf(err, "store entry %d", i)
		}
	}

	return len(entries), nil
}

type flavorFile struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// LoadFlavors reads a JSON array of {name, image} into the catalog.
func (d *Dataset) LoadFlavors(r io.Reader) (int, error) {
	var entries []flavorFile
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, errors.Wrap(err, "failed to decode flavor file")
	}

	for i, entry := range entries {
		if err := d.AddFlavor(entry.Name, entry.Image); err != nil {
			return i, errors.Wrapf(err, "flavor entry %d", i)
		}
	}

	return len(entries), nil
}

func (d *Dataset) lock() func() {
	d.txMu.Lock()
	d.mu.Lock()

	return func() {
		d.mu.Unlock()
		d.txMu.Unlock()
	}
}

func (d *Dataset) read(fn func(s *state)) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fn(d.state)
}

func (d *Dataset) write(fn func(s *state, now time.Time) error) error {
	unlock := d.lock()
	defer unlock()

	return fn(d.state, d.now())
}
