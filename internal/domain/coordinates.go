package domain

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Validate returns a ValidationError on field "coordinates" when either
// component is not a finite number inside its range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return invalid("coordinates", fmt.Sprintf("latitude must be within [-90, 90], got %v", c.Latitude))
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return invalid("coordinates", fmt.Sprintf("longitude must be within [-180, 180], got %v", c.Longitude))
	}
	return nil
}

// Point returns c as an orb.Point, which orders components (lon, lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinatesFromPoint is the inverse of Coordinates.Point.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Latitude: p.Lat(), Longitude: p.Lon()}
}
