package queries_test

import (
	"testing"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/services"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newZoneGenerator(t *testing.T) *services.ZoneGenerator {
	t.Helper()
	g, err := services.NewZoneGenerator(0)
	require.NoError(t, err)
	return g
}

func TestNewCreateZonesQuery(t *testing.T) {
	_, err := queries.NewCreateZonesQuery(at(100, 0), 0, 0, false)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "center")
	assert.Contains(t, err.Error(), "radiusKm")
	assert.Contains(t, err.Error(), "count")

	query, err := queries.NewCreateZonesQuery(at(0, 0), 10, services.MaxZones, true)
	require.NoError(t, err)
	assert.True(t, query.IncludeLoad())
}

func TestCreateZonesQueryHandler_Handle(t *testing.T) {
	center := at(48.1374, 11.5755)

	t.Run("geometry_only_does_not_touch_storage", func(t *testing.T) {
		// Arrange
		reader := new(MockCourierReader)
		handler := queries.NewCreateZonesQueryHandler(newZoneGenerator(t), reader)
		query, err := queries.NewCreateZonesQuery(center, 10, 4, false)
		require.NoError(t, err)

		// Act
		resp, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.Zones, 4)
		for i, z := range resp.Zones {
			assert.Equal(t, i, z.Zone.Index())
			assert.InDelta(t, 90.0, z.Zone.SweepDegrees(), 1e-9)
			assert.Nil(t, z.CourierIDs)
		}
		reader.AssertNotCalled(t, "GetAll", mock.Anything)
		reader.AssertNotCalled(t, "FindInBoundingBox", mock.Anything, mock.Anything)
	})

	t.Run("load_places_couriers_by_bearing", func(t *testing.T) {
		// Arrange
		northEast := newCourier(t, "ne", 15, kernel.DestinationPoint(center, 45, 3))
		south := newCourier(t, "s", 15, kernel.DestinationPoint(center, 200, 3))
		west := newCourier(t, "w", 15, kernel.DestinationPoint(center, 280, 3))
		beyond := newCourier(t, "beyond", 15, kernel.DestinationPoint(center, 45, 9.9))

		reader := new(MockCourierReader)
		reader.On("FindInBoundingBox", mock.Anything, mock.AnythingOfType("kernel.BoundingBox")).
			Return([]*courier.Courier{northEast, south, west, beyond}, nil).Once()
		handler := queries.NewCreateZonesQueryHandler(newZoneGenerator(t), reader)
		query, err := queries.NewCreateZonesQuery(center, 5, 4, true)
		require.NoError(t, err)

		// Act
		resp, err := handler.Handle(t.Context(), query)

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.Zones, 4)
		assert.Equal(t, []kernel.UUID{northEast.ID()}, resp.Zones[0].CourierIDs)
		assert.Empty(t, resp.Zones[1].CourierIDs)
		assert.Equal(t, []kernel.UUID{south.ID()}, resp.Zones[2].CourierIDs)
		assert.Equal(t, []kernel.UUID{west.ID()}, resp.Zones[3].CourierIDs)
		assert.Equal(t, 1, resp.Uncovered)
		reader.AssertExpectations(t)
	})

	t.Run("zone_ids_are_stable", func(t *testing.T) {
		handler := queries.NewCreateZonesQueryHandler(newZoneGenerator(t), new(MockCourierReader))
		query, err := queries.NewCreateZonesQuery(center, 5, 3, false)
		require.NoError(t, err)

		first, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		second, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)

		for i := range first.Zones {
			assert.True(t, first.Zones[i].Zone.ID().IsEqual(second.Zones[i].Zone.ID()))
		}
	})
}
