package queries

import (
	"context"
	"log/slog"
	"time"

	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"
	"routing/internal/core/ports"
)

const (
	operationPlan  = "plan"
	operationApply = "apply"
)

// PlanRouteQueryHandler runs the sequencer and reports each run to the
// observer. A plan that exhausted its budget or could not be made feasible is
// still returned; both outcomes are logged.
type PlanRouteQueryHandler struct {
	sequencer *services.Sequencer
	observer  ports.SequencingObserver
	logger    *slog.Logger
}

func NewPlanRouteQueryHandler(
	sequencer *services.Sequencer,
	observer ports.SequencingObserver,
	logger *slog.Logger,
) PlanRouteQueryHandler {
	return PlanRouteQueryHandler{
		sequencer: sequencer,
		observer:  observerOrNoop(observer),
		logger:    logger.With("component", "plan_route_query_handler"),
	}
}

func (h PlanRouteQueryHandler) Handle(ctx context.Context, query PlanRouteQuery) (route.Plan, error) {
	if err := query.Validate(); err != nil {
		return route.Plan{}, err
	}
	if err := ctx.Err(); err != nil {
		return route.Plan{}, err
	}

	started := time.Now()
	plan, err := h.sequencer.Sequence(query.Stops(), query.Start(), query.StartTime())
	if err != nil {
		return route.Plan{}, err
	}
	elapsed := time.Since(started)

	h.observer.ObserveSequencing(operationPlan, elapsed, plan)
	logPlanOutcome(ctx, h.logger, plan, elapsed)

	return plan, nil
}

func logPlanOutcome(ctx context.Context, logger *slog.Logger, plan route.Plan, elapsed time.Duration) {
	if plan.BudgetExceeded {
		logger.WarnContext(ctx, "Improvement budget exhausted, returning best plan found",
			"stops", plan.Sequence.Len(),
			"iterations", plan.Iterations,
			"elapsed", elapsed,
		)
	}
	if !plan.Feasible && plan.Violation != nil {
		logger.InfoContext(ctx, "No feasible order found",
			"stops", plan.Sequence.Len(),
			"violation", plan.Violation.String(),
		)
	}
}

type noopObserver struct{}

func (noopObserver) ObserveSequencing(string, time.Duration, route.Plan) {}

func observerOrNoop(observer ports.SequencingObserver) ports.SequencingObserver {
	if observer == nil {
		return noopObserver{}
	}
	return observer
}
