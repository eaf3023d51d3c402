package kernel

import (
	"errors"
	"fmt"
	"math"

	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

const (
	// MinPolygonVertices is the smallest vertex count that encloses an area.
	MinPolygonVertices = 3

	// DefaultCircleSegments is used by CircleToPolygon when segments is zero.
	DefaultCircleSegments = 32
)

var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon or CircleToPolygon")

// Polygon is a closed ring of coordinates treated as a planar shape in
// latitude/longitude space.
//
// NewPolygon does not check that the ring is simple (no self-intersections)
// or that it stays off the antimeridian; containment on such rings is undefined.
// CircleToPolygon rejects discs that would produce one.
type Polygon struct {
	vertices []Coordinate
	bounds   BoundingBox
	guard    guard.ConstructorGuard
}

// NewPolygon builds a polygon from at least three valid vertices. A trailing
// vertex equal to the first one closes the ring and is dropped.
func NewPolygon(vertices []Coordinate) (Polygon, error) {
	ring := make([]Coordinate, len(vertices))
	copy(ring, vertices)
	if len(ring) > 1 && ring[0].Equals(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}

	if len(ring) < MinPolygonVertices {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("polygon",
			fmt.Errorf("needs at least %d vertices, got %d", MinPolygonVertices, len(ring)))
	}

	var vertexErrs []error
	for i, v := range ring {
		if err := v.Validate(); err != nil {
			vertexErrs = append(vertexErrs, fmt.Errorf("vertex %d: %w", i, err))
		}
	}
	if err := errors.Join(vertexErrs...); err != nil {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("polygon", err)
	}

	bounds, err := boundsOf(ring)
	if err != nil {
		return Polygon{}, err
	}

	return Polygon{
		vertices: ring,
		bounds:   bounds,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// CircleToPolygon approximates the circle of radiusKm around center with a
// regular N-gon whose vertices lie on the circle. segments == 0 selects
// DefaultCircleSegments. Circles reaching a pole or crossing the antimeridian
// are rejected, see ValidatePlanarDisc.
func CircleToPolygon(center Coordinate, radiusKm float64, segments int) (Polygon, error) {
	if segments == 0 {
		segments = DefaultCircleSegments
	}
	if err := center.Validate(); err != nil {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("center", err)
	}
	if !(radiusKm > 0) || math.IsInf(radiusKm, 0) {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("must be a positive finite number, got %g", radiusKm))
	}
	if segments < MinPolygonVertices {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("segments",
			fmt.Errorf("needs at least %d, got %d", MinPolygonVertices, segments))
	}
	if err := ValidatePlanarDisc(center, radiusKm); err != nil {
		return Polygon{}, err
	}

	step := 360.0 / float64(segments)
	vertices := make([]Coordinate, 0, segments)
	for i := range segments {
		vertices = append(vertices, DestinationPoint(center, float64(i)*step, radiusKm))
	}

	return NewPolygon(vertices)
}

// Vertices returns a copy of the open ring.
func (p Polygon) Vertices() []Coordinate {
	out := make([]Coordinate, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Ring returns the closed ring: the vertices followed by the first vertex again.
func (p Polygon) Ring() []Coordinate {
	if len(p.vertices) == 0 {
		return nil
	}
	out := make([]Coordinate, 0, len(p.vertices)+1)
	out = append(out, p.vertices...)
	return append(out, p.vertices[0])
}

func (p Polygon) BoundingBox() BoundingBox { return p.bounds }

// Contains runs a ray-casting test with longitude as x and latitude as y.
// Points on an edge or vertex count as inside. Invalid points are never contained.
func (p Polygon) Contains(c Coordinate) bool {
	if !c.IsValid() || len(p.vertices) < MinPolygonVertices {
		return false
	}
	if !p.bounds.Contains(c) {
		return false
	}

	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if onSegment(c, a, b) {
			return true
		}
		if (a.Lat > c.Lat) != (b.Lat > c.Lat) {
			crossLon := (b.Lon-a.Lon)*(c.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if c.Lon < crossLon {
				inside = !inside
			}
		}
	}
	return inside
}

func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

const edgeTolerance = 1e-12

func onSegment(c, a, b Coordinate) bool {
	cross := (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
	if math.Abs(cross) > edgeTolerance {
		return false
	}
	return c.Lon >= math.Min(a.Lon, b.Lon)-edgeTolerance && c.Lon <= math.Max(a.Lon, b.Lon)+edgeTolerance &&
		c.Lat >= math.Min(a.Lat, b.Lat)-edgeTolerance && c.Lat <= math.Max(a.Lat, b.Lat)+edgeTolerance
}

func boundsOf(ring []Coordinate) (BoundingBox, error) {
	sw, ne := ring[0], ring[0]
	for _, v := range ring[1:] {
		sw.Lat = math.Min(sw.Lat, v.Lat)
		sw.Lon = math.Min(sw.Lon, v.Lon)
		ne.Lat = math.Max(ne.Lat, v.Lat)
		ne.Lon = math.Max(ne.Lon, v.Lon)
	}
	return NewBoundingBox(sw, ne)
}
