package services

import (
	"fmt"
	"math"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/zone"
	"routing/internal/pkg/errs"
)

// MaxZones bounds CreateZones so a single request cannot allocate unbounded polygons.
const MaxZones = 360

// ZoneGenerator splits a disc into equal-angle sectors.
//
// The partition is purely geometric and deterministic: it does not balance
// load. Callers wanting balanced zones re-run it with another count or radius,
// using LocateInZones to measure the load.
type ZoneGenerator struct {
	circleSegments int
}

// NewZoneGenerator returns a generator that samples arcs with the density of
// a circleSegments-gon. Zero selects kernel.DefaultCircleSegments.
func NewZoneGenerator(circleSegments int) (*ZoneGenerator, error) {
	if circleSegments == 0 {
		circleSegments = kernel.DefaultCircleSegments
	}
	if circleSegments < kernel.MinPolygonVertices {
		return nil, errs.NewValueIsOutOfRangeError("circleSegments", circleSegments, kernel.MinPolygonVertices, math.MaxInt)
	}
	return &ZoneGenerator{circleSegments: circleSegments}, nil
}

// CreateZones partitions the disc of maxRadiusKm around center into n
// sectors of 360/n degrees. Sector i spans bearings [i*360/n, (i+1)*360/n)
// and is outlined by the center plus points sampled along its arc. A single
// zone is the circle polygon itself. A disc reaching a pole or crossing the
// antimeridian is rejected.
func (g *ZoneGenerator) CreateZones(center kernel.Coordinate, maxRadiusKm float64, n int) ([]zone.Zone, error) {
	if err := center.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("center", err)
	}
	if !(maxRadiusKm > 0) || math.IsInf(maxRadiusKm, 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxRadiusKm",
			fmt.Errorf("must be a positive finite number, got %g", maxRadiusKm))
	}
	if n < 1 || n > MaxZones {
		return nil, errs.NewValueIsOutOfRangeError("n", n, 1, MaxZones)
	}
	if err := kernel.ValidatePlanarDisc(center, maxRadiusKm); err != nil {
		return nil, err
	}

	if n == 1 {
		polygon, err := kernel.CircleToPolygon(center, maxRadiusKm, g.circleSegments)
		if err != nil {
			return nil, err
		}
		z, err := zone.NewZone(zoneID(center, maxRadiusKm, n, 0), 0, center, maxRadiusKm, 0, 360, polygon)
		if err != nil {
			return nil, err
		}
		return []zone.Zone{z}, nil
	}

	sweep := 360.0 / float64(n)
	steps := max(1, int(math.Ceil(float64(g.circleSegments)/float64(n))))

	zones := make([]zone.Zone, 0, n)
	for i := range n {
		startBearing := float64(i) * sweep
		endBearing := float64(i+1) * sweep
		if i == n-1 {
			endBearing = 360
		}

		ring := make([]kernel.Coordinate, 0, steps+2)
		ring = append(ring, center)
		for k := 0; k <= steps; k++ {
			bearing := startBearing + sweep*float64(k)/float64(steps)
			if k == steps {
				bearing = endBearing
			}
			ring = append(ring, kernel.DestinationPoint(center, bearing, maxRadiusKm))
		}

		polygon, err := kernel.NewPolygon(ring)
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
		z, err := zone.NewZone(zoneID(center, maxRadiusKm, n, i), i, center, maxRadiusKm, startBearing, endBearing, polygon)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func zoneID(center kernel.Coordinate, radiusKm float64, n, index int) kernel.UUID {
	return kernel.NewNameBasedUUID(fmt.Sprintf("zone:%s:%g:%d:%d", center, radiusKm, n, index))
}

// ZoneOccupancy lists the pool items a zone covers.
type ZoneOccupancy[T Locatable] struct {
	Zone    zone.Zone
	Members []T
}

// LocateInZones assigns every pool item to the first zone covering it, using
// the exact sector test. Items outside every zone are returned separately.
func LocateInZones[T Locatable](zones []zone.Zone, pool []T) ([]ZoneOccupancy[T], []T, error) {
	occupancy := make([]ZoneOccupancy[T], len(zones))
	for i, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("zones[%d]", i), err)
		}
		occupancy[i] = ZoneOccupancy[T]{Zone: z, Members: []T{}}
	}

	outside := make([]T, 0)
	for _, item := range pool {
		placed := false
		for i := range occupancy {
			if occupancy[i].Zone.Covers(item.Location()) {
				occupancy[i].Members = append(occupancy[i].Members, item)
				placed = true
				break
			}
		}
		if !placed {
			outside = append(outside, item)
		}
	}
	return occupancy, outside, nil
}
