// Package route holds the values exchanged with the sequencing engine: stops,
// their kinds and precedence links, immutable sequences, per-leg metrics and
// the plan returned for a sequencing request.
//
// None of these values are persisted by the engine; callers store whatever
// part of a Plan they need on their own assignment records.
package route
