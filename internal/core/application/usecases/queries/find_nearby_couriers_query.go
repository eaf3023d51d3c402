package queries

import (
	"errors"
	"fmt"
	"math"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

// MaxNearbyLimit caps how many couriers one proximity query returns.
const MaxNearbyLimit = 100

var ErrFindNearbyCouriersQueryIsNotConstructed = errors.New(
	"FindNearbyCouriersQuery must be created via NewFindNearbyCouriersQuery constructor",
)

// FindNearbyCouriersQuery looks up the couriers closest to target.
// Without options it returns the limit nearest couriers anywhere. WithRadius
// keeps only couriers within the radius; WithArea keeps only couriers inside
// a rectangle. Both may be combined.
type FindNearbyCouriersQuery struct { //nolint:recvcheck //using for validation
	target   kernel.Coordinate
	limit    int
	radiusKm float64
	area     kernel.BoundingBox
	hasArea  bool

	guard guard.ConstructorGuard
}

type NearbyOption func(*FindNearbyCouriersQuery) error

// WithRadius restricts results to couriers at most radiusKm from the target.
func WithRadius(radiusKm float64) NearbyOption {
	return func(q *FindNearbyCouriersQuery) error {
		if !(radiusKm > 0) || math.IsInf(radiusKm, 1) {
			return errs.NewValueIsInvalidErrorWithCause("radiusKm",
				fmt.Errorf("must be a positive finite number, got %g", radiusKm))
		}
		q.radiusKm = radiusKm
		return nil
	}
}

// WithArea restricts results to couriers inside box.
func WithArea(box kernel.BoundingBox) NearbyOption {
	return func(q *FindNearbyCouriersQuery) error {
		if err := box.Validate(); err != nil {
			return err
		}
		q.area = box
		q.hasArea = true
		return nil
	}
}

func NewFindNearbyCouriersQuery(target kernel.Coordinate, limit int, opts ...NearbyOption) (FindNearbyCouriersQuery, error) {
	query := FindNearbyCouriersQuery{
		guard: guard.NewConstructorGuard(),
	}

	errList := []error{query.setTarget(target), query.setLimit(limit)}
	for _, opt := range opts {
		errList = append(errList, opt(&query))
	}
	if err := errors.Join(errList...); err != nil {
		return FindNearbyCouriersQuery{}, err
	}

	return query, nil
}

func (q FindNearbyCouriersQuery) Validate() error {
	return q.guard.Validate(ErrFindNearbyCouriersQueryIsNotConstructed)
}

func (q FindNearbyCouriersQuery) Target() kernel.Coordinate { return q.target }

func (q FindNearbyCouriersQuery) Limit() int { return q.limit }

// RadiusKm is zero when the search is unbounded.
func (q FindNearbyCouriersQuery) RadiusKm() float64 { return q.radiusKm }

func (q FindNearbyCouriersQuery) Area() (kernel.BoundingBox, bool) { return q.area, q.hasArea }

func (q *FindNearbyCouriersQuery) setTarget(target kernel.Coordinate) error {
	if err := target.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("target", err)
	}
	q.target = target
	return nil
}

func (q *FindNearbyCouriersQuery) setLimit(limit int) error {
	if limit < 1 || limit > MaxNearbyLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNearbyLimit)
	}
	q.limit = limit
	return nil
}

// NearbyCourier is the read model of one proximity match.
// ETA is the straight-line travel time at the courier's own speed.
type NearbyCourier struct {
	ID         kernel.UUID
	Name       string
	Location   kernel.Coordinate
	DistanceKm float64
	ETA        time.Duration
}

// FindNearbyCouriersQueryResponse lists matches nearest first. Fastest is the
// match that reaches the target first, which can differ from the nearest one
// when speeds differ; it is nil when nothing matched.
type FindNearbyCouriersQueryResponse struct {
	Couriers []NearbyCourier
	Fastest  *NearbyCourier
}
