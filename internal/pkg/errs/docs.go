// Package errs provides standardized error types for the ice-tube back office.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InsufficientStockError: For when a stock deduction would drive a quantity negative
//   - InvalidTransitionError: For when an order status change is not allowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, and Is() also matching the Cause
//
// Callers classify failures with errors.Is against the sentinels, and read the
// details with errors.As against the struct types.
package errs
