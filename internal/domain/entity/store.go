// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/paulmach/orb"
)

// Store is a physical retail location that can carry flavors.
type Store struct {
	ID        int64     // Surrogate key.
	Name      string    // Display name.
	Address   string    // Free-form street address.
	Lat       float64   // WGS84 latitude.
	Lon       float64   // WGS84 longitude.
	CreatedAt time.Time // Timestamp of when the store was imported.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Point returns the store location as an orb point (lon, lat).
func (s *Store) Point() orb.Point {
	return orb.Point{s.Lon, s.Lat}
}

// ValidCoordinate reports whether lat and lon are finite and inside the
// WGS84 range.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// StoreAvailability is a store plus the availability records the caller
// asked for. Absent flavors are unknown.
type StoreAvailability struct {
	Store        Store
	Availability []AvailabilityRecord
}

// StoreDetail is a store with its status for every flavor in the catalog.
type StoreDetail struct {
	Store   Store
	Flavors []FlavorAvailability
}
