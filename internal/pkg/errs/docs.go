// Package errs provides standardized error types for the kitchen service.
// Every type follows the same pattern so callers can classify failures with
// errors.Is against the package sentinels.
//
// The package includes:
//   - ObjectNotFoundError: an id has no matching record (HTTP 404)
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError: malformed input
//     or a data-integrity failure (HTTP 400)
//   - NoOpError: a write matched a record but modified nothing
//   - StoreUnavailableError: an I/O failure talking to the store (HTTP 503)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
