package services_test

import (
	"testing"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/services"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T services.Locatable](items []services.Match[T], name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, name(m.Item))
	}
	return out
}

func placeName(p place) string { return p.name }

func TestNearest(t *testing.T) {
	pool := []place{
		{"east", at(0, 1)},
		{"far_east", at(0, 2)},
		{"north", at(1, 0)},
	}

	t.Run("nearest_two_with_tie_broken_by_input_order", func(t *testing.T) {
		// When
		got, err := services.Nearest(at(0, 0), pool, 2)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"east", "north"}, names(got, placeName))
		assert.InDelta(t, 111.19, got[0].DistanceKm, 0.01)
		assert.InDelta(t, got[0].DistanceKm, got[1].DistanceKm, 1e-9)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 2, got[1].Position)
	})

	t.Run("k_larger_than_pool_returns_everything_sorted", func(t *testing.T) {
		got, err := services.Nearest(at(0, 0), pool, 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"east", "north", "far_east"}, names(got, placeName))
	})

	t.Run("invalid_pool_items_are_skipped", func(t *testing.T) {
		withBroken := append([]place{{"broken", at(0, 500)}}, pool...)

		got, err := services.Nearest(at(0, 0), withBroken, 3)

		require.NoError(t, err)
		assert.NotContains(t, names(got, placeName), "broken")
		assert.Len(t, got, 3)
	})

	t.Run("empty_pool_is_not_an_error", func(t *testing.T) {
		got, err := services.Nearest(at(0, 0), []place{}, 3)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid_arguments", func(t *testing.T) {
		_, err := services.Nearest(at(0, 0), pool, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = services.Nearest(at(0, 0), pool, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = services.Nearest(at(-91, 0), pool, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWithinRadius(t *testing.T) {
	pool := []place{
		{"far_east", at(0, 2)},
		{"north", at(1, 0)},
		{"here", at(0, 0)},
		{"east", at(0, 1)},
	}

	t.Run("filters_then_sorts", func(t *testing.T) {
		got, err := services.WithinRadius(at(0, 0), pool, 120)

		require.NoError(t, err)
		assert.Equal(t, []string{"here", "north", "east"}, names(got, placeName))
	})

	t.Run("zero_radius_keeps_exact_matches", func(t *testing.T) {
		got, err := services.WithinRadius(at(0, 0), pool, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"here"}, names(got, placeName))
	})

	t.Run("nothing_in_range", func(t *testing.T) {
		got, err := services.WithinRadius(at(45, 45), pool, 1)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative_radius", func(t *testing.T) {
		_, err := services.WithinRadius(at(0, 0), pool, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWithinBoundingBox(t *testing.T) {
	pool := []place{
		{"inside", at(0.5, 0.5)},
		{"corner", at(1, 1)},
		{"outside", at(1.5, 0.5)},
		{"broken", at(0.5, 999)},
	}
	box, err := kernel.NewBoundingBox(at(0, 0), at(1, 1))
	require.NoError(t, err)

	got, err := services.WithinBoundingBox(box, pool)

	require.NoError(t, err)
	assert.Equal(t, []place{pool[0], pool[1]}, got)

	_, err = services.WithinBoundingBox(kernel.BoundingBox{}, pool)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestWithinPolygon(t *testing.T) {
	pool := []place{
		{"inside", at(0.2, 0.2)},
		{"outside_triangle", at(0.9, 0.9)},
		{"vertex", at(0, 0)},
	}

	t.Run("triangle", func(t *testing.T) {
		triangle, err := kernel.NewPolygon([]kernel.Coordinate{at(0, 0), at(0, 1), at(1, 0)})
		require.NoError(t, err)

		got, err := services.WithinPolygon(triangle, pool)

		require.NoError(t, err)
		assert.Equal(t, []place{pool[0], pool[2]}, got)
	})

	t.Run("two_vertex_polygon_is_invalid_input", func(t *testing.T) {
		polygon, err := kernel.NewPolygon([]kernel.Coordinate{at(0, 0), at(1, 1)})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		got, err := services.WithinPolygon(polygon, pool)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, got)
	})

	t.Run("circle_zone_membership", func(t *testing.T) {
		circle, err := kernel.CircleToPolygon(at(0, 0), 40, 0)
		require.NoError(t, err)

		got, err := services.WithinPolygon(circle, pool)

		require.NoError(t, err)
		assert.Equal(t, []place{pool[0], pool[2]}, got)
	})
}
