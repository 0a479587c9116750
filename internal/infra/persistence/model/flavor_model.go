package model

import "time"

// FlavorModel is the GORM-specific struct for the 'flavors' table.
type FlavorModel struct {
	Name  string  `gorm:"type:varchar(255);primaryKey"`
	Image *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (FlavorModel) TableName() string {
	return "flavors"
}

// StoreFlavorModel is one availability record, keyed by (store_id, flavor_name).
type StoreFlavorModel struct {
	StoreID    int64  `gorm:"primaryKey;autoIncrement:false"`
	FlavorName string `gorm:"type:varchar(255);primaryKey;index:idx_store_flavors_flavor_available,priority:1"`
	Available  int16  `gorm:"type:smallint;not null;default:0;check:chk_store_flavors_available,available IN (0,1,2);index:idx_store_flavors_flavor_available,priority:2"`
	UpdatedAt  time.Time

	Store  *StoreModel  `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	Flavor *FlavorModel `gorm:"foreignKey:FlavorName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreFlavorModel) TableName() string {
	return "store_flavors"
}
