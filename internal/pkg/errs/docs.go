// Package errs provides the error kinds used across kitchenpos.
//
// Every typed error unwraps to a sentinel so callers classify with errors.Is:
//   - ErrValueIsRequired, ErrValueIsInvalid: malformed or inconsistent requests
//   - ErrObjectNotFound: a referenced identifier does not exist
//   - ErrStateIsInvalid: the object exists but its state forbids the operation
//
// Each kind has a constructor with and without a cause.
package errs
