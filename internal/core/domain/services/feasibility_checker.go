package services

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
)

// DefaultAssumedSpeedKmh is the average courier speed used when none is configured.
const DefaultAssumedSpeedKmh = 30.0

// MaxAssumedSpeedKmh rejects speeds no courier can sustain.
const MaxAssumedSpeedKmh = 1000.0

var ErrFeasibilityCheckerIsNotConstructed = errors.New(
	"FeasibilityChecker must be created via NewFeasibilityChecker")

// FeasibilityReport is the outcome of walking one stop ordering.
// Metrics always cover every stop, also for infeasible orderings.
type FeasibilityReport struct {
	Feasible  bool
	Violation *route.Violation
	Metrics   route.Metrics
}

// FeasibilityChecker walks an ordered stop list from a start position and
// time, checking precedence first and then time windows.
//
// Travel time between stops is the great-circle distance divided by a fixed
// assumed speed. This is a deliberate approximation: no road network, no
// live traffic.
type FeasibilityChecker struct {
	speedKmh float64
}

func NewFeasibilityChecker(speedKmh float64) (*FeasibilityChecker, error) {
	if !(speedKmh > 0) || speedKmh > MaxAssumedSpeedKmh {
		return nil, errs.NewValueIsOutOfRangeError("assumedSpeedKmh", speedKmh, 0, MaxAssumedSpeedKmh)
	}
	return &FeasibilityChecker{speedKmh: speedKmh}, nil
}

func (c *FeasibilityChecker) SpeedKmh() float64 { return c.speedKmh }

// TravelTime converts a distance to driving time at the assumed speed.
func (c *FeasibilityChecker) TravelTime(distanceKm float64) time.Duration {
	return time.Duration(distanceKm / c.speedKmh * float64(time.Hour))
}

// Check reports whether seq can be served in order starting at start at
// startTime. Invalid input is the only error.
func (c *FeasibilityChecker) Check(seq route.Sequence, start kernel.Coordinate, startTime time.Time) (FeasibilityReport, error) {
	if err := c.validate(); err != nil {
		return FeasibilityReport{}, err
	}
	p, err := newProblem(seq.Stops(), start, startTime)
	if err != nil {
		return FeasibilityReport{}, err
	}
	return c.evaluate(p, identityOrder(p.size()), true).report(), nil
}

// IsValidSequence is Check as a predicate. Invalid input is reported as false.
func (c *FeasibilityChecker) IsValidSequence(seq route.Sequence, start kernel.Coordinate, startTime time.Time) bool {
	report, err := c.Check(seq, start, startTime)
	return err == nil && report.Feasible
}

// CanCompleteWithinTimeWindows ignores precedence and answers whether every
// time window along seq is met.
func (c *FeasibilityChecker) CanCompleteWithinTimeWindows(
	seq route.Sequence,
	start kernel.Coordinate,
	startTime time.Time,
) (bool, error) {
	if err := c.validate(); err != nil {
		return false, err
	}
	p, err := newProblem(seq.Stops(), start, startTime)
	if err != nil {
		return false, err
	}
	_, windowViolation := c.walk(p, identityOrder(p.size()), false)
	return windowViolation == nil, nil
}

// Walk returns the leg-by-leg metrics of seq without judging feasibility.
func (c *FeasibilityChecker) Walk(seq route.Sequence, start kernel.Coordinate, startTime time.Time) (route.Metrics, error) {
	report, err := c.Check(seq, start, startTime)
	if err != nil {
		return route.Metrics{}, err
	}
	return report.Metrics, nil
}

// Distance sums the leg distances of seq from start. It is the distance part of
// Walk and needs no start time.
func (c *FeasibilityChecker) Distance(seq route.Sequence, start kernel.Coordinate) (float64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	p, err := newProblem(seq.Stops(), start, time.Time{})
	if err != nil {
		return 0, err
	}
	total := 0.0
	prev := fromStart
	for s := range p.size() {
		total += p.distance(prev, s)
		prev = s
	}
	return total, nil
}

func (c *FeasibilityChecker) validate() error {
	if c == nil || c.speedKmh <= 0 {
		return ErrFeasibilityCheckerIsNotConstructed
	}
	return nil
}

// evaluation is the internal form of a FeasibilityReport over an index order.
type evaluation struct {
	order     []int
	stops     []route.Stop
	metrics   route.Metrics
	violation *route.Violation
}

func (e evaluation) feasible() bool { return e.violation == nil }

func (e evaluation) report() FeasibilityReport {
	return FeasibilityReport{
		Feasible:  e.feasible(),
		Violation: e.violation,
		Metrics:   e.metrics,
	}
}

// betterOrEqualRank orders outcomes: feasible beats infeasible, and among
// infeasible ones a later first violation is better.
func (e evaluation) betterOrEqualRank(other evaluation) bool {
	switch {
	case e.feasible():
		return true
	case other.feasible():
		return false
	default:
		return e.violation.Index >= other.violation.Index
	}
}

func (e evaluation) strictlyBetterRank(other evaluation) bool {
	return e.betterOrEqualRank(other) && !other.betterOrEqualRank(e)
}

func (c *FeasibilityChecker) evaluate(p *problem, order []int, withLegs bool) evaluation {
	metrics, windowViolation := c.walk(p, order, withLegs)
	e := evaluation{order: order, stops: p.stops, metrics: metrics, violation: windowViolation}

	if idx := p.precedenceViolation(order); idx >= 0 {
		e.violation = &route.Violation{
			Index:  idx,
			StopID: p.stops[order[idx]].ID(),
			Reason: route.PrecedenceViolated,
		}
	}
	return e
}

// walk advances (time, position) stop by stop. Windows are evaluated up to the
// first miss only; later legs still contribute distance and durations.
func (c *FeasibilityChecker) walk(p *problem, order []int, withLegs bool) (route.Metrics, *route.Violation) {
	var (
		metrics   route.Metrics
		violation *route.Violation
		now       = p.startTime
		prev      = fromStart
	)
	if withLegs {
		metrics.Legs = make([]route.Leg, 0, len(order))
	}

	for i, s := range order {
		stop := p.stops[s]
		d := p.distance(prev, s)
		travel := c.TravelTime(d)
		arrival := now.Add(travel)
		serviceStart := arrival

		var lateness time.Duration
		if window, ok := stop.TimeWindow(); ok {
			if serviceStart.Before(window.Earliest()) {
				serviceStart = window.Earliest()
			}
			if violation == nil {
				lateness = window.Lateness(serviceStart)
				if lateness > 0 {
					violation = &route.Violation{
						Index:    i,
						StopID:   stop.ID(),
						Reason:   route.TimeWindowMissed,
						Lateness: lateness,
					}
				}
			}
		}

		wait := serviceStart.Sub(arrival)
		departure := serviceStart.Add(stop.ServiceDuration())

		metrics.TotalDistanceKm += d
		metrics.DrivingTime += travel
		metrics.WaitingTime += wait
		metrics.ServiceTime += stop.ServiceDuration()

		if withLegs {
			metrics.Legs = append(metrics.Legs, route.Leg{
				StopID:       stop.ID(),
				DistanceKm:   d,
				TravelTime:   travel,
				Arrival:      arrival,
				ServiceStart: serviceStart,
				Departure:    departure,
				Wait:         wait,
				Lateness:     lateness,
			})
		}

		now = departure
		prev = s
	}

	metrics.TotalDuration = now.Sub(p.startTime)
	return metrics, violation
}
