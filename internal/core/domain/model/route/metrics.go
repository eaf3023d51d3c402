package route

import (
	"time"

	"routing/internal/core/domain/model/kernel"
)

// Leg describes the move from the previous position (the start location for
// the first leg) to one stop, and the service performed there.
type Leg struct {
	StopID       kernel.UUID
	DistanceKm   float64
	TravelTime   time.Duration
	Arrival      time.Time
	ServiceStart time.Time
	Departure    time.Time
	Wait         time.Duration
	// Lateness is how far ServiceStart lies past the stop's window; zero when on time.
	Lateness time.Duration
}

// Metrics aggregates a leg-by-leg walk. TotalDistanceKm is always the sum of
// the legs' haversine distances.
type Metrics struct {
	TotalDistanceKm float64
	TotalDuration   time.Duration
	DrivingTime     time.Duration
	WaitingTime     time.Duration
	ServiceTime     time.Duration
	Legs            []Leg
}

// TotalDurationMinutes is TotalDuration expressed in fractional minutes.
func (m Metrics) TotalDurationMinutes() float64 {
	return m.TotalDuration.Minutes()
}

// Finish is the departure time from the last stop, or the zero time for an empty walk.
func (m Metrics) Finish() time.Time {
	if len(m.Legs) == 0 {
		return time.Time{}
	}
	return m.Legs[len(m.Legs)-1].Departure
}
