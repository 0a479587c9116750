package entity

import "time"

// Connection records one anonymous visit to the map.
type Connection struct {
	ID        int64
	SessionID string
	UserAgent string
	CreatedAt time.Time
}

// StatsInterval is the bucket width for connection statistics.
type StatsInterval string

const (
	StatsInterval5m StatsInterval = "5m"
	StatsInterval1h StatsInterval = "1h"
	StatsInterval1d StatsInterval = "1d"
)

// Bucket returns the width of one bucket and the number of buckets shown.
func (i StatsInterval) Bucket() (width time.Duration, buckets int, ok bool) {
	switch i {
	case StatsInterval5m:
		return 5 * time.Minute, 288, true
	case StatsInterval1h:
		return time.Hour, 168, true
	case StatsInterval1d:
		return 24 * time.Hour, 90, true
	default:
		return 0, 0, false
	}
}

// ConnectionBucket is the visit count of one time bucket.
type ConnectionBucket struct {
	Start time.Time `json:"start"`
	Count int64     `json:"count"`
}
