package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrUnauthorized signals a missing, malformed or unknown credential (HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden signals that the caller is authenticated but lacks access (HTTP 403).
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
