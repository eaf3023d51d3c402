// Package courier provides the Courier aggregate: a courier's identity, travel
// speed and last reported position. Couriers form the candidate pool of
// proximity searches and zone load counts.
//
// Key business rules:
//   - a courier has a valid identifier, a non-empty name and a positive speed
//   - its position is always a valid coordinate
//   - location reports older than the stored one are rejected as stale
package courier
