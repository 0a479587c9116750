package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
)

// SRIDWGS84 is the spatial reference of every stored point.
const SRIDWGS84 = 4326

// GeoPoint maps an orb.Point to a PostGIS geography(Point,4326) column as EWKB.
type GeoPoint struct {
	orb.Point
}

// NewGeoPoint builds a point from latitude and longitude.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Point: orb.Point{lon, lat}}
}

// Value implements driver.Valuer.
func (p GeoPoint) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, SRIDWGS84).Value()
}

// Scan implements sql.Scanner.
func (p *GeoPoint) Scan(src any) error {
	if src == nil {
		p.Point = orb.Point{}

		return nil
	}

	var point orb.Point
	scanner := ewkb.Scanner(&point)
	if err := scanner.Scan(src); err != nil {
		return errors.Wrap(err, "scan geography point")
	}
	p.Point = point

	return nil
}

// GormDataType tells GORM migrations which column type to use.
func (GeoPoint) GormDataType() string {
	return "geography(Point,4326)"
}
