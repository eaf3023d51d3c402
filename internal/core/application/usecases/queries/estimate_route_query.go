package queries

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/guard"
)

var ErrEstimateRouteQueryIsNotConstructed = errors.New(
	"EstimateRouteQuery must be created via NewEstimateRouteQuery constructor",
)

// EstimateRouteQuery asks for distance and duration of a fixed order
// without reordering it.
type EstimateRouteQuery struct {
	sequence  route.Sequence
	start     kernel.Coordinate
	startTime time.Time

	guard guard.ConstructorGuard
}

func NewEstimateRouteQuery(sequence route.Sequence, start kernel.Coordinate, startTime time.Time) (EstimateRouteQuery, error) {
	if err := errors.Join(validateStart(start), validateStartTime(startTime)); err != nil {
		return EstimateRouteQuery{}, err
	}

	return EstimateRouteQuery{
		sequence:  sequence,
		start:     start,
		startTime: startTime,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q EstimateRouteQuery) Validate() error {
	return q.guard.Validate(ErrEstimateRouteQueryIsNotConstructed)
}

func (q EstimateRouteQuery) Sequence() route.Sequence { return q.sequence }

func (q EstimateRouteQuery) Start() kernel.Coordinate { return q.start }

func (q EstimateRouteQuery) StartTime() time.Time { return q.startTime }

// EstimateRouteQueryResponse summarises a fixed order.
// WithinTimeWindows ignores precedence; ValidSequence checks both.
type EstimateRouteQueryResponse struct {
	DistanceKm        float64
	TravelTime        time.Duration
	WithinTimeWindows bool
	ValidSequence     bool
}
