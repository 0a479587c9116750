package model

import (
	"time"

	"gorm.io/gorm"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Name      string   `gorm:"type:varchar(255);not null"`
	Address   string   `gorm:"type:text;not null;default:''"`
	Lat       float64  `gorm:"type:double precision;not null;index:idx_store_lat_lon"`
	Lon       float64  `gorm:"type:double precision;not null;index:idx_store_lat_lon"`
	Location  GeoPoint `gorm:"type:geography(Point,4326);not null;index:idx_store_location,type:gist"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// BeforeSave keeps the geography point in sync with lat/lon.
func (m *StoreModel) BeforeSave(_ *gorm.DB) error {
	m.Location = NewGeoPoint(m.Lat, m.Lon)

	return nil
}
