// Package errs provides standardized error types for the routing engine and the
// service around it. Every constructor returns a typed error that unwraps to a
// package-level sentinel, so callers classify failures with errors.Is and read
// details with errors.As.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a precondition
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ObjectNotFoundError: a persisted object cannot be found
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type with the parameter name and an optional cause
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The engine reports every InvalidInput failure through these types. Infeasible
// routes and exhausted improvement budgets are values, never errors.
package errs
