package kernel

import (
	"errors"
	"fmt"
	"math"

	"routing/internal/pkg/errs"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate is a WGS84 position in degrees.
//
// Coordinate is a plain value so that data reported by external systems can be
// carried as-is; IsValid tells whether it may take part in distance math.
// Use NewCoordinate where a value must be valid from the start.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate returns a coordinate or a range error for each out-of-range axis.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// IsValid reports whether both axes are finite and within range.
func (c Coordinate) IsValid() bool {
	return inRange(c.Lat, MinLatitude, MaxLatitude) && inRange(c.Lon, MinLongitude, MaxLongitude)
}

// Validate returns a joined range error naming every invalid axis.
func (c Coordinate) Validate() error {
	var latErr, lonErr error
	if !inRange(c.Lat, MinLatitude, MaxLatitude) {
		latErr = errs.NewValueIsOutOfRangeError("latitude", c.Lat, MinLatitude, MaxLatitude)
	}
	if !inRange(c.Lon, MinLongitude, MaxLongitude) {
		lonErr = errs.NewValueIsOutOfRangeError("longitude", c.Lon, MinLongitude, MaxLongitude)
	}
	return errors.Join(latErr, lonErr)
}

// Equals compares both axes exactly.
func (c Coordinate) Equals(other Coordinate) bool {
	return c.Lat == other.Lat && c.Lon == other.Lon
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g,%g)", c.Lat, c.Lon)
}

func inRange(v, lo, hi float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= lo && v <= hi
}
