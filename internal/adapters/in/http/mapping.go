package http

import (
	"fmt"
	"time"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/domain/model/zone"
	"routing/internal/generated/servers"
	"routing/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func coordinateToDomain(c servers.Coordinate) kernel.Coordinate {
	return kernel.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

func coordinateFromDomain(c kernel.Coordinate) servers.Coordinate {
	return servers.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

// uuidToDomain rejects the nil UUID, which the wire format cannot tell apart
// from a missing id.
func uuidToDomain(param string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return u, nil
}

func stopToDomain(s servers.Stop) (route.Stop, error) {
	id, err := uuidToDomain("id", s.Id)
	if err != nil {
		return route.Stop{}, err
	}
	kind, err := route.ParseKind(string(s.Kind))
	if err != nil {
		return route.Stop{}, err
	}

	var opts []route.StopOption
	if s.TimeWindow != nil {
		window, err := kernel.NewTimeWindow(s.TimeWindow.Earliest, s.TimeWindow.Latest)
		if err != nil {
			return route.Stop{}, err
		}
		opts = append(opts, route.WithTimeWindow(window))
	}
	if s.ServiceSeconds != nil && *s.ServiceSeconds != 0 {
		opts = append(opts, route.WithServiceDuration(time.Duration(*s.ServiceSeconds)*time.Second))
	}
	if s.PickupId != nil {
		pickupID, err := uuidToDomain("pickupId", *s.PickupId)
		if err != nil {
			return route.Stop{}, err
		}
		opts = append(opts, route.WithPickup(pickupID))
	}

	return route.NewStop(id, coordinateToDomain(s.Location), kind, opts...)
}

// stopsToDomain converts the stops of a route request, keeping their order.
func stopsToDomain(req servers.RouteRequest) ([]route.Stop, error) {
	stops := make([]route.Stop, len(req.Stops))
	for i, s := range req.Stops {
		stop, err := stopToDomain(s)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i] = stop
	}
	return stops, nil
}

func planFromDomain(p route.Plan) servers.Plan {
	ids := p.Sequence.IDs()
	sequence := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		sequence[i] = id.Bytes()
	}

	legs := make([]servers.Leg, len(p.Metrics.Legs))
	for i, l := range p.Metrics.Legs {
		legs[i] = servers.Leg{
			StopId:          l.StopID.Bytes(),
			DistanceKm:      l.DistanceKm,
			TravelSeconds:   l.TravelTime.Seconds(),
			Arrival:         l.Arrival,
			ServiceStart:    l.ServiceStart,
			Departure:       l.Departure,
			WaitSeconds:     l.Wait.Seconds(),
			LatenessSeconds: l.Lateness.Seconds(),
		}
	}

	plan := servers.Plan{
		Sequence:       sequence,
		Feasible:       p.Feasible,
		BudgetExceeded: p.BudgetExceeded,
		Iterations:     p.Iterations,
		Metrics: servers.RouteMetrics{
			TotalDistanceKm:      p.Metrics.TotalDistanceKm,
			TotalDurationMinutes: p.Metrics.TotalDurationMinutes(),
			DrivingSeconds:       p.Metrics.DrivingTime.Seconds(),
			WaitingSeconds:       p.Metrics.WaitingTime.Seconds(),
			ServiceSeconds:       p.Metrics.ServiceTime.Seconds(),
			Finish:               p.Metrics.Finish(),
			Legs:                 legs,
		},
	}
	if p.Violation != nil {
		plan.Violation = &servers.Violation{
			Index:           p.Violation.Index,
			StopId:          p.Violation.StopID.Bytes(),
			Reason:          servers.ViolationReason(p.Violation.Reason.String()),
			LatenessSeconds: p.Violation.Lateness.Seconds(),
		}
	}
	return plan
}

func nearbyCourierFromQuery(c queries.NearbyCourier) servers.NearbyCourier {
	return servers.NearbyCourier{
		Id:         c.ID.Bytes(),
		Name:       c.Name,
		Location:   coordinateFromDomain(c.Location),
		DistanceKm: c.DistanceKm,
		EtaSeconds: c.ETA.Seconds(),
	}
}

// areaFromParams returns nil when no corner is given. A partial box is
// rejected rather than completed with zeros.
func areaFromParams(params servers.FindNearbyCouriersParams) (*kernel.BoundingBox, error) {
	corners := []*float64{params.SwLat, params.SwLon, params.NeLat, params.NeLon}
	given := 0
	for _, c := range corners {
		if c != nil {
			given++
		}
	}
	switch given {
	case 0:
		return nil, nil
	case len(corners):
	default:
		return nil, errs.NewValueIsRequiredErrorWithCause("area",
			fmt.Errorf("swLat, swLon, neLat and neLon must be given together"))
	}

	box, err := kernel.NewBoundingBox(
		kernel.Coordinate{Lat: *params.SwLat, Lon: *params.SwLon},
		kernel.Coordinate{Lat: *params.NeLat, Lon: *params.NeLon},
	)
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func zoneFromDomain(z zone.Zone, courierIDs []kernel.UUID) servers.Zone {
	vertices := z.Polygon().Vertices()
	polygon := make([]servers.Coordinate, len(vertices))
	for i, v := range vertices {
		polygon[i] = coordinateFromDomain(v)
	}

	response := servers.Zone{
		Id:           z.ID().Bytes(),
		Index:        z.Index(),
		Center:       coordinateFromDomain(z.Center()),
		RadiusKm:     z.RadiusKm(),
		StartBearing: z.StartBearing(),
		EndBearing:   z.EndBearing(),
		Polygon:      polygon,
	}
	if courierIDs != nil {
		ids := make([]openapi_types.UUID, len(courierIDs))
		for i, id := range courierIDs {
			ids[i] = id.Bytes()
		}
		response.CourierIds = &ids
	}
	return response
}
