package route_test

import (
	"testing"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStops(t *testing.T, n int) []route.Stop {
	t.Helper()
	stops := make([]route.Stop, 0, n)
	for i := range n {
		s, err := route.NewStop(kernel.NewUUID(), kernel.Coordinate{Lat: float64(i), Lon: 0}, route.Other)
		require.NoError(t, err)
		stops = append(stops, s)
	}
	return stops
}

func TestSequence(t *testing.T) {
	t.Run("is_a_copy_of_the_input", func(t *testing.T) {
		stops := mustStops(t, 3)
		seq := route.NewSequence(stops...)

		stops[0] = stops[2]

		assert.Equal(t, 0.0, seq.At(0).Location().Lat)
		assert.Equal(t, 3, seq.Len())
	})

	t.Run("stops_accessor_does_not_expose_internal_slice", func(t *testing.T) {
		seq := route.NewSequence(mustStops(t, 2)...)

		out := seq.Stops()
		out[0] = out[1]

		assert.Equal(t, 0.0, seq.At(0).Location().Lat)
	})

	t.Run("reorder_returns_new_sequence", func(t *testing.T) {
		stops := mustStops(t, 3)
		seq := route.NewSequence(stops...)

		reordered := seq.Reorder([]int{2, 0, 1})

		assert.Equal(t, []kernel.UUID{stops[2].ID(), stops[0].ID(), stops[1].ID()}, reordered.IDs())
		assert.Equal(t, []kernel.UUID{stops[0].ID(), stops[1].ID(), stops[2].ID()}, seq.IDs())
	})

	t.Run("index_of", func(t *testing.T) {
		stops := mustStops(t, 3)
		seq := route.NewSequence(stops...)

		assert.Equal(t, 1, seq.IndexOf(stops[1].ID()))
		assert.Equal(t, -1, seq.IndexOf(kernel.NewUUID()))
	})

	t.Run("empty", func(t *testing.T) {
		seq := route.NewSequence()

		assert.True(t, seq.IsEmpty())
		assert.Empty(t, seq.Stops())
	})
}

func TestMetrics(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	m := route.Metrics{
		TotalDuration: 90 * time.Second,
		Legs:          []route.Leg{{Departure: start}, {Departure: start.Add(time.Hour)}},
	}

	assert.InDelta(t, 1.5, m.TotalDurationMinutes(), 1e-12)
	assert.Equal(t, start.Add(time.Hour), m.Finish())
	assert.True(t, route.Metrics{}.Finish().IsZero())
}

func TestViolation_String(t *testing.T) {
	id := kernel.NewUUID()

	late := route.Violation{Index: 2, StopID: id, Reason: route.TimeWindowMissed, Lateness: 5 * time.Minute}
	order := route.Violation{Index: 1, StopID: id, Reason: route.PrecedenceViolated}

	assert.Equal(t, "time_window_missed at stop 2 ("+id.String()+"), late by 5m0s", late.String())
	assert.Equal(t, "precedence_violated at stop 1 ("+id.String()+")", order.String())
}
