// Package services implements the route sequencing and geospatial proximity engine.
//
// The package includes:
//   - proximity search over any pool of Locatable items: Nearest, WithinRadius,
//     WithinBoundingBox, WithinPolygon
//   - FeasibilityChecker: walks an ordered stop list and reports the first broken
//     precedence or time-window constraint together with full route metrics
//   - Sequencer: nearest-neighbour construction followed by bounded 2-opt/swap
//     improvement under an iteration, stall and wall-clock budget
//   - ZoneGenerator: equal-angle partition of a disc into polygon sectors
//   - CourierDispatcher: fastest courier for a target position
//
// Every operation is a pure function of its arguments. Nothing here performs
// I/O, starts goroutines or holds shared mutable state, so all values may be
// used from any number of goroutines at once. Malformed input is the only
// error; infeasible routes and exhausted budgets are reported as values.
package services
