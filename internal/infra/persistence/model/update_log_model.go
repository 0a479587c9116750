package model

import "time"

// UpdateLogModel is the GORM-specific struct for the append-only 'update_logs' table.
type UpdateLogModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	StoreID      int64     `gorm:"not null;index"`
	FlavorName   string    `gorm:"type:varchar(255);not null"`
	Availability int16     `gorm:"type:smallint;not null"`
	SessionID    *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null;index:idx_update_logs_created_at,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (UpdateLogModel) TableName() string {
	return "update_logs"
}

// ConnectionModel is the GORM-specific struct for the 'connections' table.
type ConnectionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	SessionID string    `gorm:"type:varchar(64);not null;index"`
	UserAgent string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
