package queries

import (
	"context"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/services"
)

type CreateZonesQueryHandler struct {
	generator *services.ZoneGenerator
	reader    CourierReader
}

func NewCreateZonesQueryHandler(generator *services.ZoneGenerator, reader CourierReader) CreateZonesQueryHandler {
	return CreateZonesQueryHandler{
		generator: generator,
		reader:    reader,
	}
}

func (h CreateZonesQueryHandler) Handle(ctx context.Context, query CreateZonesQuery) (CreateZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CreateZonesQueryResponse{}, err
	}

	zones, err := h.generator.CreateZones(query.Center(), query.RadiusKm(), query.Count())
	if err != nil {
		return CreateZonesQueryResponse{}, err
	}

	response := CreateZonesQueryResponse{Zones: make([]ZoneLoad, len(zones))}
	if !query.IncludeLoad() {
		for i, z := range zones {
			response.Zones[i] = ZoneLoad{Zone: z}
		}
		return response, nil
	}

	candidates, err := h.loadCandidates(ctx, query)
	if err != nil {
		return CreateZonesQueryResponse{}, err
	}

	occupancy, outside, err := services.LocateInZones(zones, candidates)
	if err != nil {
		return CreateZonesQueryResponse{}, err
	}
	for i, o := range occupancy {
		ids := make([]kernel.UUID, len(o.Members))
		for j, c := range o.Members {
			ids[j] = c.ID()
		}
		response.Zones[i] = ZoneLoad{Zone: o.Zone, CourierIDs: ids}
	}
	response.Uncovered = len(outside)

	return response, nil
}

func (h CreateZonesQueryHandler) loadCandidates(ctx context.Context, query CreateZonesQuery) ([]*courier.Courier, error) {
	if box, ok := kernel.BoundingBoxAround(query.Center(), query.RadiusKm()); ok {
		return h.reader.FindInBoundingBox(ctx, box)
	}
	return h.reader.GetAll(ctx)
}
