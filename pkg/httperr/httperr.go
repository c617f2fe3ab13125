// Package httperr carries an HTTP status code alongside an error so that
// middleware deep in the stack can decide the client-visible response without
// writing it.
package httperr

import (
	"errors"
	"net/http"
)

// HTTPError represents an HTTP error with status code and a short,
// human-readable key that is safe to show to the client.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Client-visible reason (e.g. "bad cookie")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal server error"}
)

// New creates an HTTP error with the given status code and key.
func New(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// From extracts the first HTTPError found in err's tree.
// Errors that carry no HTTPError map to ErrInternalServerError so internal
// details never leak into the response body.
func From(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}

// Write renders err as a plain-text response.
func Write(w http.ResponseWriter, err error) {
	httpErr := From(err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpErr.Code)
	_, _ = w.Write([]byte(httpErr.Key))
}

// IsClientError reports whether code is in the 4xx range.
func IsClientError(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
