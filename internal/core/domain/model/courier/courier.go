package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrSpeedIsRequired = errs.NewValueIsRequiredError("speedKmh")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrStaleLocationReport is returned when a report is older than the stored position.
	ErrStaleLocationReport = errors.New("location report is older than the last known position")
)

// Courier is the aggregate root for a courier's last known state.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", 18, kernel.Coordinate{Lat: 52.52, Lon: 13.405}, time.Now())
//	if err != nil {
//	    return err
//	}
//	eta, err := c.TravelTimeTo(stop.Location())
type Courier struct {
	id         kernel.UUID
	name       string
	speedKmh   float64
	location   kernel.Coordinate
	reportedAt time.Time
	guard      guard.ConstructorGuard
}

// NewCourier registers a courier at its first reported position.
func NewCourier(
	id kernel.UUID,
	name string,
	speedKmh float64,
	location kernel.Coordinate,
	reportedAt time.Time,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setSpeed(speedKmh),
		courier.setLocation(location, reportedAt),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier rebuilds a courier loaded from storage; it applies the same rules as NewCourier.
func RestoreCourier(
	id kernel.UUID,
	name string,
	speedKmh float64,
	location kernel.Coordinate,
	reportedAt time.Time,
) (*Courier, error) {
	return NewCourier(id, name, speedKmh, location, reportedAt)
}

func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID { return c.id }

func (c *Courier) Name() string { return c.name }

func (c *Courier) SpeedKmh() float64 { return c.speedKmh }

// Location is the last reported position. It makes Courier usable as a proximity pool item.
func (c *Courier) Location() kernel.Coordinate { return c.location }

func (c *Courier) ReportedAt() time.Time { return c.reportedAt }

// ReportLocation moves the courier to a newly reported position.
// A report with the same timestamp as the stored one wins; an older one fails
// with ErrStaleLocationReport and leaves the courier unchanged.
func (c *Courier) ReportLocation(location kernel.Coordinate, reportedAt time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if reportedAt.Before(c.reportedAt) {
		return fmt.Errorf("%w: got %s, have %s", ErrStaleLocationReport,
			reportedAt.Format(time.RFC3339), c.reportedAt.Format(time.RFC3339))
	}
	return c.setLocation(location, reportedAt)
}

// TravelTimeTo estimates the straight-line travel time from the last known
// position at the courier's own speed.
func (c *Courier) TravelTimeTo(target kernel.Coordinate) (time.Duration, error) {
	if err := target.Validate(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("target", err)
	}
	hours := kernel.Distance(c.location, target) / c.speedKmh
	return time.Duration(hours * float64(time.Hour)), nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setSpeed(speedKmh float64) error {
	if !(speedKmh > 0) {
		return ErrSpeedIsRequired
	}
	c.speedKmh = speedKmh
	return nil
}

func (c *Courier) setLocation(location kernel.Coordinate, reportedAt time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if reportedAt.IsZero() {
		return errs.NewValueIsRequiredError("reportedAt")
	}
	c.location = location
	c.reportedAt = reportedAt.UTC()
	return nil
}
