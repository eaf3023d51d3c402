package services

import (
	"errors"
	"fmt"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
)

const fromStart = -1

// problem is a validated stop set with its precedence links resolved to indices.
type problem struct {
	stops     []route.Stop
	start     kernel.Coordinate
	startTime time.Time
	// pickupOf[i] is the index of stop i's pickup, or -1 when it has none in the set.
	pickupOf []int
	// matrix[i+1][j] is the distance from stop i (row 0: start) to stop j.
	matrix [][]float64
}

func newProblem(stops []route.Stop, start kernel.Coordinate, startTime time.Time) (*problem, error) {
	if err := start.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("start", err)
	}

	index := make(map[kernel.UUID]int, len(stops))
	for i, stop := range stops {
		if err := validateStop(i, stop); err != nil {
			return nil, err
		}
		if prev, dup := index[stop.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(stopParam(i, stop),
				fmt.Errorf("duplicate stop id, first seen at index %d", prev))
		}
		index[stop.ID()] = i
	}

	pickupOf := make([]int, len(stops))
	for i, stop := range stops {
		pickupOf[i] = -1
		pickupID, ok := stop.PickupID()
		if !ok {
			continue
		}
		j, present := index[pickupID]
		if !present {
			// the parcel is already on board
			continue
		}
		if stops[j].Kind() != route.Pickup {
			return nil, errs.NewValueIsInvalidErrorWithCause(stopParam(i, stop),
				fmt.Errorf("referenced stop %s is a %s, not a pickup", pickupID, stops[j].Kind()))
		}
		pickupOf[i] = j
	}

	return &problem{
		stops:     stops,
		start:     start,
		startTime: startTime,
		pickupOf:  pickupOf,
	}, nil
}

func validateStop(i int, stop route.Stop) error {
	if err := stop.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("stops[%d]", i), err)
	}
	if err := stop.Location().Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(stopParam(i, stop), err)
	}
	if err := stop.Kind().Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(stopParam(i, stop), err)
	}
	return nil
}

func stopParam(i int, stop route.Stop) string {
	return fmt.Sprintf("stops[%d] %s", i, stop.ID())
}

func (p *problem) size() int { return len(p.stops) }

// precompute fills the distance matrix used by the sequencer's inner loop.
func (p *problem) precompute() {
	n := len(p.stops)
	p.matrix = make([][]float64, n+1)
	for row := range p.matrix {
		p.matrix[row] = make([]float64, n)
		from := p.start
		if row > 0 {
			from = p.stops[row-1].Location()
		}
		for j := range n {
			p.matrix[row][j] = kernel.Distance(from, p.stops[j].Location())
		}
	}
}

// distance between stop from (fromStart for the start location) and stop to.
func (p *problem) distance(from, to int) float64 {
	if p.matrix != nil {
		return p.matrix[from+1][to]
	}
	origin := p.start
	if from != fromStart {
		origin = p.stops[from].Location()
	}
	return kernel.Distance(origin, p.stops[to].Location())
}

// precedenceViolation returns the first position in order whose delivery is
// not preceded by its pickup, or -1.
func (p *problem) precedenceViolation(order []int) int {
	pos := make([]int, len(p.stops))
	for i, s := range order {
		pos[s] = i
	}
	for i, s := range order {
		if pk := p.pickupOf[s]; pk >= 0 && pos[pk] >= i {
			return i
		}
	}
	return -1
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

var errNoEligibleStop = errors.New("no stop is eligible for placement")
