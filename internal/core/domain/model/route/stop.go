package route

import (
	"errors"
	"fmt"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrStopIsNotConstructed = errs.NewValueIsRequiredError("stop must be created via NewStop")

// Stop is one place a courier has to visit.
//
// The coordinate is stored as given. Engine operations reject a stop with an
// invalid coordinate at call time, which lets callers see exactly which stop of
// a submitted batch is broken.
type Stop struct {
	id              kernel.UUID
	location        kernel.Coordinate
	kind            Kind
	window          kernel.TimeWindow
	hasWindow       bool
	serviceDuration time.Duration
	pickupID        kernel.UUID
	hasPickup       bool
	guard           guard.ConstructorGuard
}

// StopOption configures optional stop attributes.
type StopOption func(*Stop) error

// WithTimeWindow sets the interval in which service must begin.
func WithTimeWindow(window kernel.TimeWindow) StopOption {
	return func(s *Stop) error {
		if err := window.Validate(); err != nil {
			return err
		}
		s.window = window
		s.hasWindow = true
		return nil
	}
}

// WithServiceDuration sets the time spent at the stop once service starts.
func WithServiceDuration(d time.Duration) StopOption {
	return func(s *Stop) error {
		if d < 0 {
			return errs.NewValueIsInvalidErrorWithCause("serviceDuration", fmt.Errorf("must not be negative, got %s", d))
		}
		s.serviceDuration = d
		return nil
	}
}

// WithPickup links a Delivery to the Pickup that must be visited strictly before it.
func WithPickup(pickupID kernel.UUID) StopOption {
	return func(s *Stop) error {
		if err := pickupID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("pickupID", err)
		}
		s.pickupID = pickupID
		s.hasPickup = true
		return nil
	}
}

func NewStop(id kernel.UUID, location kernel.Coordinate, kind Kind, opts ...StopOption) (Stop, error) {
	s := Stop{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setID(id), s.setKind(kind)); err != nil {
		return Stop{}, err
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Stop{}, err
		}
	}

	if s.hasPickup {
		if s.kind != Delivery {
			return Stop{}, errs.NewValueIsInvalidErrorWithCause("pickupID",
				fmt.Errorf("only a delivery stop may reference a pickup, got %s", s.kind))
		}
		if s.pickupID.IsEqual(s.id) {
			return Stop{}, errs.NewValueIsInvalidErrorWithCause("pickupID",
				errors.New("a delivery cannot reference itself"))
		}
	}

	return s, nil
}

func (s Stop) ID() kernel.UUID { return s.id }

func (s Stop) Location() kernel.Coordinate { return s.location }

func (s Stop) Kind() Kind { return s.kind }

// TimeWindow returns the window and whether the stop has one.
func (s Stop) TimeWindow() (kernel.TimeWindow, bool) { return s.window, s.hasWindow }

func (s Stop) ServiceDuration() time.Duration { return s.serviceDuration }

// PickupID returns the referenced pickup and whether the stop has one.
func (s Stop) PickupID() (kernel.UUID, bool) { return s.pickupID, s.hasPickup }

func (s Stop) Validate() error {
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s Stop) String() string {
	return fmt.Sprintf("%s %s@%s", s.kind, s.id, s.location)
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	s.id = id
	return nil
}

func (s *Stop) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}
