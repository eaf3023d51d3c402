package queries

import (
	"errors"
	"fmt"
	"math"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/zone"
	"routing/internal/core/domain/services"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var ErrCreateZonesQueryIsNotConstructed = errors.New(
	"CreateZonesQuery must be created via NewCreateZonesQuery constructor",
)

// CreateZonesQuery partitions the disc of radiusKm around center into count
// equal sectors. With courier load requested, every stored courier is placed
// in the sector covering its last known position.
//
// Example:
//
//	query, err := NewCreateZonesQuery(depot, 12, 6, true)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	for _, z := range resp.Zones {
//	    fmt.Printf("zone %d: %d couriers\n", z.Zone.Index(), len(z.CourierIDs))
//	}
type CreateZonesQuery struct {
	center      kernel.Coordinate
	radiusKm    float64
	count       int
	includeLoad bool

	guard guard.ConstructorGuard
}

func NewCreateZonesQuery(center kernel.Coordinate, radiusKm float64, count int, includeLoad bool) (CreateZonesQuery, error) {
	var centerErr, radiusErr, countErr error
	if err := center.Validate(); err != nil {
		centerErr = errs.NewValueIsInvalidErrorWithCause("center", err)
	}
	if !(radiusKm > 0) || math.IsInf(radiusKm, 1) {
		radiusErr = errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("must be a positive finite number, got %g", radiusKm))
	}
	if count < 1 || count > services.MaxZones {
		countErr = errs.NewValueIsOutOfRangeError("count", count, 1, services.MaxZones)
	}
	if err := errors.Join(centerErr, radiusErr, countErr); err != nil {
		return CreateZonesQuery{}, err
	}

	return CreateZonesQuery{
		center:      center,
		radiusKm:    radiusKm,
		count:       count,
		includeLoad: includeLoad,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q CreateZonesQuery) Validate() error {
	return q.guard.Validate(ErrCreateZonesQueryIsNotConstructed)
}

func (q CreateZonesQuery) Center() kernel.Coordinate { return q.center }

func (q CreateZonesQuery) RadiusKm() float64 { return q.radiusKm }

func (q CreateZonesQuery) Count() int { return q.count }

func (q CreateZonesQuery) IncludeLoad() bool { return q.includeLoad }

// ZoneLoad is a zone with the couriers it covers. CourierIDs is nil when
// load was not requested.
type ZoneLoad struct {
	Zone       zone.Zone
	CourierIDs []kernel.UUID
}

type CreateZonesQueryResponse struct {
	Zones []ZoneLoad
	// Uncovered counts the candidate couriers outside every zone.
	Uncovered int
}
