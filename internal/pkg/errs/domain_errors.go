package errs

import "errors"

// Client-facing error kinds. Concrete errors are marked with one of these so that
// the transport layer can map them without knowing every sentinel.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrUnavailableRoom = errors.New("room unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
)

// NewKind creates a sentinel error carrying the given kind marker.
func NewKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
