package queries

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var (
	ErrPlanRouteQueryIsNotConstructed = errors.New(
		"PlanRouteQuery must be created via NewPlanRouteQuery constructor",
	)
	ErrStartTimeIsRequired = errs.NewValueIsRequiredError("startTime")
)

// PlanRouteQuery asks the sequencer for the best order of a set of stops
// visited from start, departing at startTime.
//
// Example:
//
//	query, err := NewPlanRouteQuery(stops, depot, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid route request: %w", err)
//	}
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !plan.Feasible {
//	    fmt.Printf("best effort order violates %s\n", plan.Violation)
//	}
type PlanRouteQuery struct {
	stops     []route.Stop
	start     kernel.Coordinate
	startTime time.Time

	guard guard.ConstructorGuard
}

// NewPlanRouteQuery checks the request envelope. The stops themselves are
// validated by the sequencer, which reports the offending index.
func NewPlanRouteQuery(stops []route.Stop, start kernel.Coordinate, startTime time.Time) (PlanRouteQuery, error) {
	if err := errors.Join(validateStart(start), validateStartTime(startTime)); err != nil {
		return PlanRouteQuery{}, err
	}

	return PlanRouteQuery{
		stops:     append([]route.Stop(nil), stops...),
		start:     start,
		startTime: startTime,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q PlanRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanRouteQueryIsNotConstructed)
}

func (q PlanRouteQuery) Stops() []route.Stop { return append([]route.Stop(nil), q.stops...) }

func (q PlanRouteQuery) Start() kernel.Coordinate { return q.start }

func (q PlanRouteQuery) StartTime() time.Time { return q.startTime }

func validateStart(start kernel.Coordinate) error {
	if err := start.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("start", err)
	}
	return nil
}

func validateStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return ErrStartTimeIsRequired
	}
	return nil
}
