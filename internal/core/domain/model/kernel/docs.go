// Package kernel provides the geographic and identity primitives shared by the
// routing domain: coordinates, great-circle distance, bounding boxes, polygons,
// time windows and identifiers.
//
// Angles are taken and returned in degrees and converted to radians internally.
// Distances are kilometres on a sphere of radius EarthRadiusKm. Results are never
// rounded; callers round for display only.
package kernel
