package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. The
// response body is appended to the wrapped error text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
var ErrUnexpectedResponse = errors.New("unexpected response body")
