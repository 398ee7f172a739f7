// internal/application/usecase/common_usecase.go
package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Usecase-level error classes. Handlers map them to HTTP status codes:
// ErrInvalidArgument -> 400, ErrNotFound -> 404, ErrConflict -> 409, anything else -> 500.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// IDGenerator returns a fresh random identity.
type IDGenerator func() string

func newUUID() string { return uuid.NewString() }
