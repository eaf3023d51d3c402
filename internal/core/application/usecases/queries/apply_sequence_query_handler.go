package queries

import (
	"context"
	"log/slog"
	"time"

	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"
	"routing/internal/core/ports"
)

// ApplySequenceQueryHandler checks a caller supplied order and returns its
// plan unchanged apart from metrics and the first violation.
type ApplySequenceQueryHandler struct {
	sequencer *services.Sequencer
	observer  ports.SequencingObserver
	logger    *slog.Logger
}

func NewApplySequenceQueryHandler(
	sequencer *services.Sequencer,
	observer ports.SequencingObserver,
	logger *slog.Logger,
) ApplySequenceQueryHandler {
	return ApplySequenceQueryHandler{
		sequencer: sequencer,
		observer:  observerOrNoop(observer),
		logger:    logger.With("component", "apply_sequence_query_handler"),
	}
}

func (h ApplySequenceQueryHandler) Handle(ctx context.Context, query ApplySequenceQuery) (route.Plan, error) {
	if err := query.Validate(); err != nil {
		return route.Plan{}, err
	}
	if err := ctx.Err(); err != nil {
		return route.Plan{}, err
	}

	started := time.Now()
	plan, err := h.sequencer.ApplySequence(query.Sequence(), query.Start(), query.StartTime())
	if err != nil {
		return route.Plan{}, err
	}
	elapsed := time.Since(started)

	h.observer.ObserveSequencing(operationApply, elapsed, plan)
	if !plan.Feasible {
		h.logger.DebugContext(ctx, "Rejected caller sequence", "violation", plan.Violation.String())
	}

	return plan, nil
}
