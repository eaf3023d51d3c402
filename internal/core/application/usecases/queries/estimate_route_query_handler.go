package queries

import (
	"context"

	"routing/internal/core/domain/services"
)

type EstimateRouteQueryHandler struct {
	sequencer *services.Sequencer
}

func NewEstimateRouteQueryHandler(sequencer *services.Sequencer) EstimateRouteQueryHandler {
	return EstimateRouteQueryHandler{sequencer: sequencer}
}

func (h EstimateRouteQueryHandler) Handle(ctx context.Context, query EstimateRouteQuery) (EstimateRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateRouteQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return EstimateRouteQueryResponse{}, err
	}

	seq, start, startTime := query.Sequence(), query.Start(), query.StartTime()

	distance, err := h.sequencer.EstimateDistance(seq, start)
	if err != nil {
		return EstimateRouteQueryResponse{}, err
	}
	travelTime, err := h.sequencer.EstimateTravelTime(seq, start, startTime)
	if err != nil {
		return EstimateRouteQueryResponse{}, err
	}
	withinWindows, err := h.sequencer.CanCompleteWithinTimeWindows(seq, start, startTime)
	if err != nil {
		return EstimateRouteQueryResponse{}, err
	}

	return EstimateRouteQueryResponse{
		DistanceKm:        distance,
		TravelTime:        travelTime,
		WithinTimeWindows: withinWindows,
		ValidSequence:     h.sequencer.IsValidSequence(seq, start, startTime),
	}, nil
}
