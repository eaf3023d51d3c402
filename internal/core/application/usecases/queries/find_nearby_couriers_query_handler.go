package queries

import (
	"context"
	"errors"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/services"
)

// CourierReader is the read side of the courier repository.
type CourierReader interface {
	GetAll(ctx context.Context) ([]*courier.Courier, error)
	FindInBoundingBox(ctx context.Context, box kernel.BoundingBox) ([]*courier.Courier, error)
}

// FindNearbyCouriersQueryHandler loads candidate couriers, narrowed in the
// database by a bounding box when the query is bounded, and ranks them by
// great-circle distance.
type FindNearbyCouriersQueryHandler struct {
	reader     CourierReader
	dispatcher services.CourierDispatcher
}

func NewFindNearbyCouriersQueryHandler(reader CourierReader) FindNearbyCouriersQueryHandler {
	return FindNearbyCouriersQueryHandler{
		reader:     reader,
		dispatcher: services.NewCourierDispatcher(),
	}
}

func (h FindNearbyCouriersQueryHandler) Handle(
	ctx context.Context,
	query FindNearbyCouriersQuery,
) (FindNearbyCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindNearbyCouriersQueryResponse{}, err
	}

	candidates, err := h.loadCandidates(ctx, query)
	if err != nil {
		return FindNearbyCouriersQueryResponse{}, err
	}

	var matches []services.Match[*courier.Courier]
	if query.RadiusKm() > 0 {
		matches, err = services.WithinRadius(query.Target(), candidates, query.RadiusKm())
		if err == nil && len(matches) > query.Limit() {
			matches = matches[:query.Limit()]
		}
	} else {
		matches, err = services.Nearest(query.Target(), candidates, query.Limit())
	}
	if err != nil {
		return FindNearbyCouriersQueryResponse{}, err
	}

	response := FindNearbyCouriersQueryResponse{
		Couriers: make([]NearbyCourier, 0, len(matches)),
	}
	matched := make([]*courier.Courier, 0, len(matches))
	for _, m := range matches {
		eta, etaErr := m.Item.TravelTimeTo(query.Target())
		if etaErr != nil {
			return FindNearbyCouriersQueryResponse{}, etaErr
		}
		response.Couriers = append(response.Couriers, NearbyCourier{
			ID:         m.Item.ID(),
			Name:       m.Item.Name(),
			Location:   m.Item.Location(),
			DistanceKm: m.DistanceKm,
			ETA:        eta,
		})
		matched = append(matched, m.Item)
	}

	fastest, _, err := h.dispatcher.Dispatch(query.Target(), matched)
	switch {
	case errors.Is(err, services.ErrCourierNotFound):
	case err != nil:
		return FindNearbyCouriersQueryResponse{}, err
	default:
		for i := range response.Couriers {
			if response.Couriers[i].ID.IsEqual(fastest.ID()) {
				response.Fastest = &response.Couriers[i]
				break
			}
		}
	}

	return response, nil
}

func (h FindNearbyCouriersQueryHandler) loadCandidates(
	ctx context.Context,
	query FindNearbyCouriersQuery,
) ([]*courier.Courier, error) {
	if area, ok := query.Area(); ok {
		candidates, err := h.reader.FindInBoundingBox(ctx, area)
		if err != nil {
			return nil, err
		}
		return services.WithinBoundingBox(area, candidates)
	}

	if query.RadiusKm() > 0 {
		if box, ok := kernel.BoundingBoxAround(query.Target(), query.RadiusKm()); ok {
			return h.reader.FindInBoundingBox(ctx, box)
		}
	}

	return h.reader.GetAll(ctx)
}
