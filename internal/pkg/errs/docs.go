// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError, VersionIsInvalidError) raised while building or loading
//     domain objects.
//   - Rule violations (RuleViolationError) wrapping one of the lifecycle sentinels
//     such as ErrIllegalTransition or ErrAlreadyReviewed.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// CodeOf maps any error produced by the core onto the stable code that callers
// surface to the actor (NOT_FOUND, ILLEGAL_TRANSITION, ...).
package errs
