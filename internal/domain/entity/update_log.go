package entity

import "time"

// UpdateLogEntry is an immutable audit row written for every status change.
type UpdateLogEntry struct {
	ID           int64
	StoreID      int64
	StoreName    string // Filled on reads only.
	FlavorName   string
	Availability Availability
	SessionID    *string
	CreatedAt    time.Time
}
