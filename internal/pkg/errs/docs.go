// Package errs defines the error taxonomy shared by the domain model and the
// adapters: required values, invalid values, out-of-range values, and missing
// objects.
//
// Every type follows the same pattern: a sentinel variable (e.g.
// ErrObjectNotFound) for errors.Is classification, a struct carrying the
// parameter name and optional cause, constructors with and without cause, and
// Unwrap returning the sentinel. Callers branch on the sentinel, log the full
// message.
package errs
