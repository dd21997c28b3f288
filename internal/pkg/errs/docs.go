// Package errs provides standardized error types for the wholesale application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Domain errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or breaks a business rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a referenced object does not exist
//
// Store errors:
//   - ConstraintViolationError: an integrity constraint rejected a statement
//   - TransientStoreError: connectivity or contention failure, safe to retry
//   - ResourceExhaustedError: no connection became available in time, safe to retry
//   - CommitFailedError: the store rejected the commit, outcome is unknown
//
// Each error type has a sentinel error variable, a struct type with the error
// details, constructors with and without cause, and an Unwrap method returning
// the sentinel so errors.Is can classify it.
package errs
