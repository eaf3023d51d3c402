package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/services"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlanRouteQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stops := pickupDeliveryStops(t)

		query, err := queries.NewPlanRouteQuery(stops, at(0, 0), clock(8, 0))

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Len(t, query.Stops(), 4)
		assert.Equal(t, at(0, 0), query.Start())
		assert.Equal(t, clock(8, 0), query.StartTime())
	})

	t.Run("stops_are_copied", func(t *testing.T) {
		stops := pickupDeliveryStops(t)
		query, err := queries.NewPlanRouteQuery(stops, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		stops[0] = stops[1]

		assert.NotEqual(t, stops[0].ID(), query.Stops()[0].ID())
	})

	t.Run("invalid_envelope", func(t *testing.T) {
		_, err := queries.NewPlanRouteQuery(nil, at(91, 0), time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, queries.ErrStartTimeIsRequired)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		assert.ErrorIs(t, queries.PlanRouteQuery{}.Validate(), queries.ErrPlanRouteQueryIsNotConstructed)
	})
}

func TestPlanRouteQueryHandler_Handle(t *testing.T) {
	t.Run("feasible_plan_is_observed", func(t *testing.T) {
		// Arrange
		stops := pickupDeliveryStops(t)
		observer := new(MockSequencingObserver)
		observer.On("ObserveSequencing", "plan", mock.AnythingOfType("time.Duration"),
			mock.MatchedBy(func(p route.Plan) bool { return p.Feasible })).Once()
		logger, logs := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 300, services.DefaultBudget), observer, logger)

		query, err := queries.NewPlanRouteQuery(stops, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		plan, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		assert.True(t, plan.Feasible)
		assert.Equal(t, 4, plan.Sequence.Len())
		observer.AssertExpectations(t)
		assert.NotContains(t, logs.String(), "No feasible order found")
	})

	t.Run("infeasible_plan_is_returned_and_logged", func(t *testing.T) {
		// Arrange
		stops := pickupDeliveryStops(t)
		observer := new(MockSequencingObserver)
		observer.On("ObserveSequencing", "plan", mock.Anything, mock.Anything).Once()
		logger, logs := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget), observer, logger)

		query, err := queries.NewPlanRouteQuery(stops, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		plan, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		assert.False(t, plan.Feasible)
		require.NotNil(t, plan.Violation)
		assert.Equal(t, route.TimeWindowMissed, plan.Violation.Reason)
		assert.Contains(t, logs.String(), "No feasible order found")
		assert.Contains(t, logs.String(), "component=plan_route_query_handler")
	})

	t.Run("budget_exhaustion_is_logged", func(t *testing.T) {
		// Arrange
		stops := make([]route.Stop, 0, 8)
		for i := range 8 {
			stops = append(stops, newStop(t, at(float64(i%3)*0.05, float64(i)*0.03), route.Other))
		}
		logger, logs := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.Budget{MaxIterations: 1}), nil, logger)

		query, err := queries.NewPlanRouteQuery(stops, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		plan, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		assert.True(t, plan.BudgetExceeded)
		assert.Contains(t, logs.String(), "Improvement budget exhausted")
	})

	t.Run("invalid_stop_is_reported_and_not_observed", func(t *testing.T) {
		// Arrange
		bad := newStop(t, at(0, 200), route.Other)
		observer := new(MockSequencingObserver)
		logger, _ := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget), observer, logger)

		query, err := queries.NewPlanRouteQuery([]route.Stop{bad}, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		// Act
		_, err = handler.Handle(t.Context(), query)

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, strings.Contains(err.Error(), "stops[0]"))
		observer.AssertNotCalled(t, "ObserveSequencing", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		logger, _ := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget), nil, logger)
		query, err := queries.NewPlanRouteQuery(nil, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unconstructed_query", func(t *testing.T) {
		logger, _ := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget), nil, logger)

		_, err := handler.Handle(t.Context(), queries.PlanRouteQuery{})

		require.ErrorIs(t, err, queries.ErrPlanRouteQueryIsNotConstructed)
	})

	t.Run("empty_stop_list", func(t *testing.T) {
		logger, _ := newLogger()
		handler := queries.NewPlanRouteQueryHandler(newSequencer(t, 30, services.DefaultBudget), nil, logger)
		query, err := queries.NewPlanRouteQuery([]route.Stop{}, at(0, 0), clock(8, 0))
		require.NoError(t, err)

		plan, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, plan.Feasible)
		assert.True(t, plan.Sequence.IsEmpty())
		assert.Equal(t, []kernel.UUID{}, plan.Sequence.IDs())
	})
}
