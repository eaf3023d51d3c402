package zone_test

import (
	"testing"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/zone"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = kernel.Coordinate{Lat: 52.52, Lon: 13.405}

func quarterZone(t *testing.T, start, end float64) zone.Zone {
	t.Helper()
	ring := []kernel.Coordinate{center}
	for b := start; b <= end; b += 15 {
		ring = append(ring, kernel.DestinationPoint(center, b, 10))
	}
	polygon, err := kernel.NewPolygon(ring)
	require.NoError(t, err)

	z, err := zone.NewZone(kernel.NewUUID(), 0, center, 10, start, end, polygon)
	require.NoError(t, err)
	return z
}

func TestNewZone(t *testing.T) {
	polygon, err := kernel.CircleToPolygon(center, 10, 16)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		z, err := zone.NewZone(id, 2, center, 10, 180, 270, polygon)

		require.NoError(t, err)
		require.NoError(t, z.Validate())
		assert.True(t, id.IsEqual(z.ID()))
		assert.Equal(t, 2, z.Index())
		assert.InDelta(t, 90, z.SweepDegrees(), 1e-12)
	})

	testCases := []struct {
		name       string
		id         kernel.UUID
		index      int
		radius     float64
		start, end float64
		polygon    kernel.Polygon
		wantErr    error
	}{
		{"missing_id", kernel.UUID{}, 0, 10, 0, 90, polygon, errs.ErrValueIsRequired},
		{"negative_index", kernel.NewUUID(), -1, 10, 0, 90, polygon, errs.ErrValueIsInvalid},
		{"zero_radius", kernel.NewUUID(), 0, 0, 0, 90, polygon, errs.ErrValueIsInvalid},
		{"empty_sweep", kernel.NewUUID(), 0, 10, 90, 90, polygon, errs.ErrValueIsInvalid},
		{"unconstructed_polygon", kernel.NewUUID(), 0, 10, 0, 90, kernel.Polygon{}, errs.ErrValueIsRequired},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := zone.NewZone(tc.id, tc.index, center, tc.radius, tc.start, tc.end, tc.polygon)

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestZone_Covers(t *testing.T) {
	north := quarterZone(t, 0, 90)
	south := quarterZone(t, 180, 270)

	assert.True(t, north.Covers(kernel.DestinationPoint(center, 45, 5)))
	assert.False(t, south.Covers(kernel.DestinationPoint(center, 45, 5)))
	assert.True(t, south.Covers(kernel.DestinationPoint(center, 200, 9.9)))
	assert.False(t, south.Covers(kernel.DestinationPoint(center, 200, 10.5)))

	assert.True(t, north.Covers(center), "center belongs to the sector starting at north")
	assert.False(t, south.Covers(center))
	assert.False(t, north.Covers(kernel.Coordinate{Lat: 95}))
}
