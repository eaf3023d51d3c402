package kernel_test

import (
	"testing"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []kernel.Coordinate {
	return []kernel.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 2},
		{Lat: 2, Lon: 2},
		{Lat: 2, Lon: 0},
	}
}

func TestNewPolygon(t *testing.T) {
	t.Run("valid_ring", func(t *testing.T) {
		p, err := kernel.NewPolygon(square())

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Len(t, p.Vertices(), 4)
		assert.Len(t, p.Ring(), 5)
		assert.Equal(t, p.Ring()[0], p.Ring()[4])
	})

	t.Run("closing_vertex_is_dropped", func(t *testing.T) {
		ring := append(square(), kernel.Coordinate{Lat: 0, Lon: 0})

		p, err := kernel.NewPolygon(ring)

		require.NoError(t, err)
		assert.Len(t, p.Vertices(), 4)
	})

	t.Run("two_vertices_are_rejected", func(t *testing.T) {
		_, err := kernel.NewPolygon([]kernel.Coordinate{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "needs at least 3 vertices, got 2")
	})

	t.Run("closed_triangle_with_two_distinct_vertices_is_rejected", func(t *testing.T) {
		_, err := kernel.NewPolygon([]kernel.Coordinate{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}, {Lat: 0, Lon: 0}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_vertex_is_rejected", func(t *testing.T) {
		ring := square()
		ring[2] = kernel.Coordinate{Lat: 95, Lon: 2}

		_, err := kernel.NewPolygon(ring)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "vertex 2")
	})

	t.Run("input_slice_is_not_retained", func(t *testing.T) {
		ring := square()
		p, err := kernel.NewPolygon(ring)
		require.NoError(t, err)

		ring[0] = kernel.Coordinate{Lat: 50, Lon: 50}

		assert.Equal(t, kernel.Coordinate{Lat: 0, Lon: 0}, p.Vertices()[0])
	})
}

func TestPolygon_Contains(t *testing.T) {
	concave, err := kernel.NewPolygon([]kernel.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 4},
		{Lat: 4, Lon: 4},
		{Lat: 4, Lon: 3},
		{Lat: 1, Lon: 3},
		{Lat: 1, Lon: 1},
		{Lat: 4, Lon: 1},
		{Lat: 4, Lon: 0},
	})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		point kernel.Coordinate
		want  bool
	}{
		{"inside_left_arm", kernel.Coordinate{Lat: 3, Lon: 0.5}, true},
		{"inside_base", kernel.Coordinate{Lat: 0.5, Lon: 2}, true},
		{"in_the_notch", kernel.Coordinate{Lat: 3, Lon: 2}, false},
		{"on_vertex", kernel.Coordinate{Lat: 0, Lon: 0}, true},
		{"on_edge", kernel.Coordinate{Lat: 0, Lon: 2}, true},
		{"outside_bounds", kernel.Coordinate{Lat: 5, Lon: 5}, false},
		{"invalid_point", kernel.Coordinate{Lat: -91, Lon: 0}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, concave.Contains(tc.point))
		})
	}
}

func TestPolygon_BoundingBox(t *testing.T) {
	p, err := kernel.NewPolygon([]kernel.Coordinate{{Lat: -1, Lon: 3}, {Lat: 2, Lon: -4}, {Lat: 5, Lon: 1}})
	require.NoError(t, err)

	box := p.BoundingBox()

	assert.Equal(t, kernel.Coordinate{Lat: -1, Lon: -4}, box.SouthWest())
	assert.Equal(t, kernel.Coordinate{Lat: 5, Lon: 3}, box.NorthEast())
}

func TestCircleToPolygon(t *testing.T) {
	center := kernel.Coordinate{Lat: 52.52, Lon: 13.405}

	t.Run("default_segments", func(t *testing.T) {
		p, err := kernel.CircleToPolygon(center, 5, 0)

		require.NoError(t, err)
		assert.Len(t, p.Vertices(), kernel.DefaultCircleSegments)
		for _, v := range p.Vertices() {
			assert.InDelta(t, 5, kernel.Distance(center, v), 1e-6)
		}
		assert.True(t, p.Contains(center))
		assert.False(t, p.Contains(kernel.DestinationPoint(center, 10, 5.5)))
		assert.True(t, p.Contains(kernel.DestinationPoint(center, 10, 4)))
	})

	t.Run("close_to_antimeridian_still_contains_center", func(t *testing.T) {
		near := kernel.Coordinate{Lat: 0, Lon: 179.5}

		p, err := kernel.CircleToPolygon(near, 10, 0)

		require.NoError(t, err)
		assert.True(t, p.Contains(near))
		assert.True(t, p.Contains(kernel.DestinationPoint(near, 45, 2)))
		assert.Less(t, p.BoundingBox().NorthEast().Lon-p.BoundingBox().SouthWest().Lon, 1.0)
	})

	t.Run("explicit_segments", func(t *testing.T) {
		p, err := kernel.CircleToPolygon(center, 1, 6)

		require.NoError(t, err)
		assert.Len(t, p.Vertices(), 6)
	})

	testCases := []struct {
		name     string
		center   kernel.Coordinate
		radius   float64
		segments int
	}{
		{"too_few_segments", center, 5, 2},
		{"negative_segments", center, 5, -1},
		{"zero_radius", center, 0, 16},
		{"negative_radius", center, -3, 16},
		{"invalid_center", kernel.Coordinate{Lat: 91}, 5, 16},
		{"crosses_antimeridian", kernel.Coordinate{Lat: 0, Lon: 179.95}, 10, 0},
		{"reaches_north_pole", kernel.Coordinate{Lat: 89.95, Lon: 0}, 10, 0},
		{"reaches_south_pole", kernel.Coordinate{Lat: -89.99, Lon: 45}, 5, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.CircleToPolygon(tc.center, tc.radius, tc.segments)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
