package services

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
)

// ErrCourierNotFound is returned when no usable courier is available.
var ErrCourierNotFound = errors.New("courier not found")

// CourierDispatcher picks the courier that reaches a target first, each
// courier travelling at its own speed from its last known position.
type CourierDispatcher struct{}

func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch returns the fastest courier and its travel time. Ties keep input order.
func (CourierDispatcher) Dispatch(target kernel.Coordinate, couriers []*courier.Courier) (*courier.Courier, time.Duration, error) {
	if err := target.Validate(); err != nil {
		return nil, 0, errs.NewValueIsInvalidErrorWithCause("target", err)
	}

	var (
		best     *courier.Courier
		bestTime time.Duration
	)
	for _, c := range couriers {
		if c.Validate() != nil {
			continue
		}
		eta, err := c.TravelTimeTo(target)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || eta < bestTime {
			best, bestTime = c, eta
		}
	}

	if best == nil {
		return nil, 0, ErrCourierNotFound
	}
	return best, bestTime, nil
}
