package kernel

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by every spherical formula in the module.
	EarthRadiusKm = 6371.0

	// UnreachableDistance is returned by Distance when either endpoint is invalid.
	UnreachableDistance = math.MaxFloat64
)

// Distance returns the great-circle distance in kilometres between a and b
// using the haversine formula. It returns UnreachableDistance instead of an
// error when either coordinate is invalid.
func Distance(a, b Coordinate) float64 {
	if !a.IsValid() || !b.IsValid() {
		return UnreachableDistance
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// DestinationPoint returns the point reached by travelling distanceKm from
// origin along the initial bearing bearingDeg (clockwise from north).
// The resulting longitude is normalised to [-180, 180].
func DestinationPoint(origin Coordinate, bearingDeg, distanceKm float64) Coordinate {
	lat1 := toRadians(origin.Lat)
	lon1 := toRadians(origin.Lon)
	theta := toRadians(bearingDeg)
	delta := distanceKm / EarthRadiusKm

	sinLat2 := math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(theta)
	sinLat2 = math.Min(1, math.Max(-1, sinLat2))
	lat2 := math.Asin(sinLat2)
	lon2 := lon1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*sinLat2,
	)

	return Coordinate{
		Lat: toDegrees(lat2),
		Lon: normalizeLongitude(toDegrees(lon2)),
	}
}

// InitialBearing returns the forward azimuth from a to b in degrees within [0, 360).
func InitialBearing(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return NormalizeBearing(toDegrees(math.Atan2(y, x)))
}

// NormalizeBearing maps any angle in degrees onto [0, 360).
func NormalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	if b >= 360 {
		b = 0
	}
	return b
}

func normalizeLongitude(lon float64) float64 {
	if lon >= MinLongitude && lon <= MaxLongitude {
		return lon
	}
	return math.Mod(lon+540, 360) - 180
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
