package kernel

import (
	"errors"
	"fmt"
	"math"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrBoundingBoxIsNotConstructed = errs.NewValueIsRequiredError(
	"bounding box must be created via NewBoundingBox")

// BoundingBox is an axis-aligned latitude/longitude rectangle given by its
// south-west and north-east corners. Boxes spanning the antimeridian are not
// supported.
type BoundingBox struct {
	southWest Coordinate
	northEast Coordinate
	guard     guard.ConstructorGuard
}

func NewBoundingBox(southWest, northEast Coordinate) (BoundingBox, error) {
	if err := errors.Join(southWest.Validate(), northEast.Validate()); err != nil {
		return BoundingBox{}, errs.NewValueIsInvalidErrorWithCause("bounding box", err)
	}
	if southWest.Lat > northEast.Lat || southWest.Lon > northEast.Lon {
		return BoundingBox{}, errs.NewValueIsInvalidErrorWithCause("bounding box",
			fmt.Errorf("south-west corner %s is not below and left of north-east corner %s", southWest, northEast))
	}

	return BoundingBox{
		southWest: southWest,
		northEast: northEast,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (b BoundingBox) SouthWest() Coordinate { return b.southWest }

func (b BoundingBox) NorthEast() Coordinate { return b.northEast }

// Contains is an inclusive range check on both axes. Invalid points are never contained.
func (b BoundingBox) Contains(c Coordinate) bool {
	if !c.IsValid() {
		return false
	}
	return c.Lat >= b.southWest.Lat && c.Lat <= b.northEast.Lat &&
		c.Lon >= b.southWest.Lon && c.Lon <= b.northEast.Lon
}

func (b BoundingBox) Validate() error {
	return b.guard.Validate(ErrBoundingBoxIsNotConstructed)
}

// BoundingBoxAround returns the smallest box that holds every point within
// radiusKm of center. ok is false when that box would reach a pole or cross
// the antimeridian; callers then have to scan without a box.
func BoundingBoxAround(center Coordinate, radiusKm float64) (box BoundingBox, ok bool) {
	if !center.IsValid() || radiusKm < 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return BoundingBox{}, false
	}
	angular := radiusKm / EarthRadiusKm
	dLat := toDegrees(angular)
	south, north := center.Lat-dLat, center.Lat+dLat
	if south <= MinLatitude || north >= MaxLatitude {
		return BoundingBox{}, false
	}

	ratio := math.Sin(angular) / math.Cos(toRadians(center.Lat))
	if ratio >= 1 {
		return BoundingBox{}, false
	}
	dLon := toDegrees(math.Asin(ratio))
	west, east := center.Lon-dLon, center.Lon+dLon
	if west < MinLongitude || east > MaxLongitude {
		return BoundingBox{}, false
	}

	box, err := NewBoundingBox(Coordinate{Lat: south, Lon: west}, Coordinate{Lat: north, Lon: east})
	if err != nil {
		return BoundingBox{}, false
	}
	return box, true
}

// ValidatePlanarDisc rejects discs that cannot be drawn as a polygon in
// latitude/longitude space: those reaching a pole or crossing the antimeridian.
func ValidatePlanarDisc(center Coordinate, radiusKm float64) error {
	if _, ok := BoundingBoxAround(center, radiusKm); !ok {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("disc of %g km around %s reaches a pole or crosses the antimeridian", radiusKm, center))
	}
	return nil
}
