package services

import (
	"cmp"
	"fmt"
	"slices"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
)

// Locatable is anything with a position: couriers, stops, depots.
type Locatable interface {
	Location() kernel.Coordinate
}

// Match is a pool item paired with its distance from the query reference.
// Position is the item's index in the input pool.
type Match[T Locatable] struct {
	Item       T
	DistanceKm float64
	Position   int
}

// Nearest returns up to k pool items closest to reference, ascending by
// distance. Equal distances keep input order. Items with invalid coordinates
// are skipped.
func Nearest[T Locatable](reference kernel.Coordinate, pool []T, k int) ([]Match[T], error) {
	if err := validateReference(reference); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("k", fmt.Errorf("must be positive, got %d", k))
	}

	matches := measure(reference, pool, func(float64) bool { return true })
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// WithinRadius returns the pool items at most radiusKm from reference,
// ascending by distance with input order breaking ties.
func WithinRadius[T Locatable](reference kernel.Coordinate, pool []T, radiusKm float64) ([]Match[T], error) {
	if err := validateReference(reference); err != nil {
		return nil, err
	}
	if !(radiusKm >= 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("radiusKm", fmt.Errorf("must not be negative, got %g", radiusKm))
	}

	return measure(reference, pool, func(d float64) bool { return d <= radiusKm }), nil
}

// WithinBoundingBox keeps the pool items inside box, in input order.
// It is the cheap pre-filter ahead of polygon tests.
func WithinBoundingBox[T Locatable](box kernel.BoundingBox, pool []T) ([]T, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	return filter(pool, box.Contains), nil
}

// WithinPolygon keeps the pool items inside polygon, in input order.
// polygon must come from kernel.NewPolygon or kernel.CircleToPolygon, which
// reject rings with fewer than three vertices.
func WithinPolygon[T Locatable](polygon kernel.Polygon, pool []T) ([]T, error) {
	if err := polygon.Validate(); err != nil {
		return nil, err
	}
	return filter(pool, polygon.Contains), nil
}

func validateReference(reference kernel.Coordinate) error {
	if err := reference.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("reference", err)
	}
	return nil
}

func measure[T Locatable](reference kernel.Coordinate, pool []T, keep func(float64) bool) []Match[T] {
	matches := make([]Match[T], 0, len(pool))
	for i, item := range pool {
		loc := item.Location()
		if !loc.IsValid() {
			continue
		}
		d := kernel.Distance(reference, loc)
		if keep(d) {
			matches = append(matches, Match[T]{Item: item, DistanceKm: d, Position: i})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return matches
}

func filter[T Locatable](pool []T, contains func(kernel.Coordinate) bool) []T {
	out := make([]T, 0, len(pool))
	for _, item := range pool {
		if contains(item.Location()) {
			out = append(out, item)
		}
	}
	return out
}
