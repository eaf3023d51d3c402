package kernel_test

import (
	"math"
	"testing"

	"routing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

const kmPerDegree = kernel.EarthRadiusKm * math.Pi / 180

var samplePoints = []kernel.Coordinate{
	{Lat: 0, Lon: 0},
	{Lat: 0, Lon: 1},
	{Lat: 1, Lon: 1},
	{Lat: 52.52, Lon: 13.405},
	{Lat: 48.8566, Lon: 2.3522},
	{Lat: -33.8688, Lon: 151.2093},
	{Lat: 40.7128, Lon: -74.006},
	{Lat: 89.9, Lon: -179.9},
	{Lat: -45, Lon: 179.99},
}

func TestDistance(t *testing.T) {
	t.Run("one_degree_along_equator_and_meridian", func(t *testing.T) {
		assert.InDelta(t, kmPerDegree, kernel.Distance(kernel.Coordinate{}, kernel.Coordinate{Lon: 1}), 1e-9)
		assert.InDelta(t, kmPerDegree, kernel.Distance(kernel.Coordinate{}, kernel.Coordinate{Lat: 1}), 1e-9)
	})

	t.Run("berlin_to_paris", func(t *testing.T) {
		d := kernel.Distance(samplePoints[3], samplePoints[4])

		assert.InDelta(t, 877.5, d, 1.0)
	})

	t.Run("antipodal_points", func(t *testing.T) {
		d := kernel.Distance(kernel.Coordinate{Lat: 0, Lon: 0}, kernel.Coordinate{Lat: 0, Lon: 180})

		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 1e-6)
	})

	t.Run("invalid_endpoint_is_unreachable", func(t *testing.T) {
		bad := kernel.Coordinate{Lat: 120, Lon: 0}

		assert.Equal(t, kernel.UnreachableDistance, kernel.Distance(bad, kernel.Coordinate{}))
		assert.Equal(t, kernel.UnreachableDistance, kernel.Distance(kernel.Coordinate{}, bad))
		assert.Equal(t, kernel.UnreachableDistance, kernel.Distance(kernel.Coordinate{Lat: math.NaN()}, kernel.Coordinate{}))
	})
}

func TestDistance_MetricProperties(t *testing.T) {
	for _, a := range samplePoints {
		assert.Zero(t, kernel.Distance(a, a), "identity for %s", a)

		for _, b := range samplePoints {
			assert.InDelta(t, kernel.Distance(a, b), kernel.Distance(b, a), 1e-9, "symmetry for %s %s", a, b)

			for _, c := range samplePoints {
				assert.LessOrEqual(t,
					kernel.Distance(a, c),
					kernel.Distance(a, b)+kernel.Distance(b, c)+1e-9,
					"triangle inequality for %s %s %s", a, b, c)
			}
		}
	}
}

func TestDestinationPoint(t *testing.T) {
	origin := kernel.Coordinate{Lat: 52.52, Lon: 13.405}

	t.Run("lands_at_requested_distance_and_bearing", func(t *testing.T) {
		for _, bearing := range []float64{0, 45, 90, 180, 270, 359} {
			dest := kernel.DestinationPoint(origin, bearing, 10)

			assert.InDelta(t, 10, kernel.Distance(origin, dest), 1e-6, "bearing %v", bearing)
			assert.InDelta(t, 0, bearingDiff(bearing, kernel.InitialBearing(origin, dest)), 1e-6, "bearing %v", bearing)
		}
	})

	t.Run("due_north_on_equator", func(t *testing.T) {
		dest := kernel.DestinationPoint(kernel.Coordinate{}, 0, kmPerDegree)

		assert.InDelta(t, 1, dest.Lat, 1e-9)
		assert.InDelta(t, 0, dest.Lon, 1e-9)
	})

	t.Run("wraps_across_antimeridian", func(t *testing.T) {
		dest := kernel.DestinationPoint(kernel.Coordinate{Lat: 0, Lon: 179.9}, 90, 2*kmPerDegree*0.1)

		assert.True(t, dest.IsValid())
		assert.InDelta(t, -179.9, dest.Lon, 1e-6)
	})
}

func TestNormalizeBearing(t *testing.T) {
	assert.InDelta(t, 0, kernel.NormalizeBearing(360), 1e-12)
	assert.InDelta(t, 270, kernel.NormalizeBearing(-90), 1e-12)
	assert.InDelta(t, 45, kernel.NormalizeBearing(765), 1e-12)
}

func bearingDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
