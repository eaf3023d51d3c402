// Package zone models the angular service sectors produced for capacity planning.
package zone

import (
	"errors"
	"fmt"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("zone must be created via NewZone")

// Zone is one angular sector of a disc around a planning center.
//
// The sector covers bearings in [StartBearing, EndBearing) measured clockwise
// from north, and distances up to RadiusKm. Polygon is its rendered outline.
type Zone struct {
	id           kernel.UUID
	index        int
	center       kernel.Coordinate
	radiusKm     float64
	startBearing float64
	endBearing   float64
	polygon      kernel.Polygon
	guard        guard.ConstructorGuard
}

func NewZone(
	id kernel.UUID,
	index int,
	center kernel.Coordinate,
	radiusKm float64,
	startBearing, endBearing float64,
	polygon kernel.Polygon,
) (Zone, error) {
	var indexErr, radiusErr, sweepErr error
	if index < 0 {
		indexErr = errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("must not be negative, got %d", index))
	}
	if !(radiusKm > 0) {
		radiusErr = errs.NewValueIsInvalidErrorWithCause("radiusKm", fmt.Errorf("must be positive, got %g", radiusKm))
	}
	if !(endBearing > startBearing) || endBearing-startBearing > 360 {
		sweepErr = errs.NewValueIsInvalidErrorWithCause("bearings",
			fmt.Errorf("sector [%g, %g) is empty or wider than a full turn", startBearing, endBearing))
	}

	if err := errors.Join(
		id.Validate(),
		center.Validate(),
		polygon.Validate(),
		indexErr,
		radiusErr,
		sweepErr,
	); err != nil {
		return Zone{}, err
	}

	return Zone{
		id:           id,
		index:        index,
		center:       center,
		radiusKm:     radiusKm,
		startBearing: startBearing,
		endBearing:   endBearing,
		polygon:      polygon,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (z Zone) ID() kernel.UUID { return z.id }

func (z Zone) Index() int { return z.index }

func (z Zone) Center() kernel.Coordinate { return z.center }

func (z Zone) RadiusKm() float64 { return z.radiusKm }

func (z Zone) StartBearing() float64 { return z.startBearing }

func (z Zone) EndBearing() float64 { return z.endBearing }

// SweepDegrees is the angular width of the sector.
func (z Zone) SweepDegrees() float64 { return z.endBearing - z.startBearing }

func (z Zone) Polygon() kernel.Polygon { return z.polygon }

// Covers reports whether c lies in the exact sector, using the bearing and
// great-circle distance from the center. Unlike Polygon().Contains it is free
// of approximation error, so sibling zones never both cover a point.
// The center itself belongs to the sector starting at bearing 0.
func (z Zone) Covers(c kernel.Coordinate) bool {
	d := kernel.Distance(z.center, c)
	if d > z.radiusKm {
		return false
	}
	if d == 0 {
		return z.startBearing == 0
	}

	b := kernel.InitialBearing(z.center, c)
	if b < z.startBearing {
		b += 360
	}
	return b >= z.startBearing && b < z.endBearing
}

func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}
