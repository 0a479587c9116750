package entity

import (
	"cmp"
	"slices"
	"strconv"
	"time"
)

// Availability is the crowd-reported status of one flavor at one store.
type Availability uint8

const (
	// AvailabilityUnknown means nobody has reported the flavor yet. It is also
	// the implied value when no record exists.
	AvailabilityUnknown Availability = 0
	// AvailabilityAvailable means the flavor was last reported in stock.
	AvailabilityAvailable Availability = 1
	// AvailabilityUnavailable means the flavor was last reported sold out.
	AvailabilityUnavailable Availability = 2
)

// Valid reports whether a is one of the three known states.
func (a Availability) Valid() bool {
	return a <= AvailabilityUnavailable
}

// Next returns the status a user tap moves to: available and unavailable
// toggle, and unknown becomes available.
func (a Availability) Next() Availability {
	if a == AvailabilityAvailable {
		return AvailabilityUnavailable
	}

	return AvailabilityAvailable
}

func (a Availability) String() string {
	switch a {
	case AvailabilityUnknown:
		return "unknown"
	case AvailabilityAvailable:
		return "available"
	case AvailabilityUnavailable:
		return "unavailable"
	default:
		return "availability(" + strconv.Itoa(int(a)) + ")"
	}
}

// displayRank orders statuses for store detail listings.
func (a Availability) displayRank() int {
	switch a {
	case AvailabilityAvailable:
		return 0
	case AvailabilityUnknown:
		return 1
	default:
		return 2
	}
}

// AvailabilityRecord is the persisted status of a (store, flavor) pair.
type AvailabilityRecord struct {
	StoreID    int64
	FlavorName string
	Available  Availability
	UpdatedAt  time.Time
}

// FlavorAvailability is one row of a store detail listing.
type FlavorAvailability struct {
	Name      string       `json:"name"`
	Image     *string      `json:"image,omitempty"`
	Available Availability `json:"available"`
}

// SortForDisplay orders flavors available first, then unknown, then
// unavailable, breaking ties by name.
func SortForDisplay(flavors []FlavorAvailability) {
	slices.SortStableFunc(flavors, func(a, b FlavorAvailability) int {
		if c := cmp.Compare(a.Available.displayRank(), b.Available.displayRank()); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})
}

// SatisfiesAll reports whether every required flavor is recorded as
// available. An empty requirement is satisfied by any store.
func SatisfiesAll(statuses map[string]Availability, required []string) bool {
	for _, name := range required {
		if statuses[name] != AvailabilityAvailable {
			return false
		}
	}

	return true
}
