package queries_test

import (
	"testing"
	"time"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRouteQueryHandler_Handle(t *testing.T) {
	t.Run("straight_line_at_known_speed", func(t *testing.T) {
		// Arrange: one degree of longitude on the equator, 60 km/h, 10 minutes of service.
		stop := newStop(t, at(0, 1), route.Other, route.WithServiceDuration(10*time.Minute))
		handler := queries.NewEstimateRouteQueryHandler(newSequencer(t, 60, services.DefaultBudget))
		query, err := queries.NewEstimateRouteQuery(route.NewSequence(stop), at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		resp, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		expectedKm := kernel.Distance(at(0, 0), at(0, 1))
		assert.InDelta(t, expectedKm, resp.DistanceKm, 1e-9)
		driving := time.Duration(expectedKm / 60 * float64(time.Hour))
		assert.InDelta(t, float64(driving+10*time.Minute), float64(resp.TravelTime), float64(time.Millisecond))
		assert.True(t, resp.WithinTimeWindows)
		assert.True(t, resp.ValidSequence)
	})

	t.Run("window_miss_and_precedence_are_reported_separately", func(t *testing.T) {
		// Arrange: feasible order at 300 km/h, too slow at 30 km/h.
		stops := pickupDeliveryStops(t)
		handler := queries.NewEstimateRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget))
		query, err := queries.NewEstimateRouteQuery(route.NewSequence(stops...), at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		resp, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.WithinTimeWindows)
		assert.False(t, resp.ValidSequence)
		assert.Positive(t, resp.DistanceKm)
	})

	t.Run("empty_sequence", func(t *testing.T) {
		handler := queries.NewEstimateRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget))
		query, err := queries.NewEstimateRouteQuery(route.NewSequence(), at(0, 0), clock(8, 0))
		require.NoError(t, err)

		resp, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Zero(t, resp.DistanceKm)
		assert.Zero(t, resp.TravelTime)
		assert.True(t, resp.WithinTimeWindows)
		assert.True(t, resp.ValidSequence)
	})

	t.Run("unconstructed_query", func(t *testing.T) {
		handler := queries.NewEstimateRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget))

		_, err := handler.Handle(t.Context(), queries.EstimateRouteQuery{})

		require.ErrorIs(t, err, queries.ErrEstimateRouteQueryIsNotConstructed)
	})
}
