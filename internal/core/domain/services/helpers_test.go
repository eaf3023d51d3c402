package services_test

import (
	"testing"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

type place struct {
	name string
	loc  kernel.Coordinate
}

func (p place) Location() kernel.Coordinate { return p.loc }

func at(lat, lon float64) kernel.Coordinate { return kernel.Coordinate{Lat: lat, Lon: lon} }

func clock(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func window(t *testing.T, from, to time.Time) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(from, to)
	require.NoError(t, err)
	return w
}

func newStop(t *testing.T, loc kernel.Coordinate, kind route.Kind, opts ...route.StopOption) route.Stop {
	t.Helper()
	s, err := route.NewStop(kernel.NewUUID(), loc, kind, opts...)
	require.NoError(t, err)
	return s
}

func newChecker(t *testing.T, speedKmh float64) *services.FeasibilityChecker {
	t.Helper()
	c, err := services.NewFeasibilityChecker(speedKmh)
	require.NoError(t, err)
	return c
}

func newSequencer(t *testing.T, speedKmh float64, budget services.Budget) *services.Sequencer {
	t.Helper()
	s, err := services.NewSequencer(newChecker(t, speedKmh), budget)
	require.NoError(t, err)
	return s
}

// pickupDeliveryScenario builds [Pickup@(0,0), Delivery@(0,1), Pickup@(1,1) 09:00-09:30, Delivery@(1,0)].
func pickupDeliveryScenario(t *testing.T) []route.Stop {
	t.Helper()
	p1 := newStop(t, at(0, 0), route.Pickup)
	d1 := newStop(t, at(0, 1), route.Delivery, route.WithPickup(p1.ID()))
	p2 := newStop(t, at(1, 1), route.Pickup, route.WithTimeWindow(window(t, clock(9, 0), clock(9, 30))))
	d2 := newStop(t, at(1, 0), route.Delivery, route.WithPickup(p2.ID()))
	return []route.Stop{p1, d1, p2, d2}
}

func assertPrecedence(t *testing.T, seq route.Sequence) {
	t.Helper()
	for i, stop := range seq.Stops() {
		pickupID, ok := stop.PickupID()
		if !ok {
			continue
		}
		if j := seq.IndexOf(pickupID); j >= 0 {
			require.Less(t, j, i, "pickup %s must precede delivery %s", pickupID, stop.ID())
		}
	}
}
