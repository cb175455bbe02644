package adapter

import "errors"

// Sentinel errors mapped from HTTP response statuses. Service-layer code
// matches them with [errors.Is] and never inspects raw status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
