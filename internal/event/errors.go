package event

import (
	"errors"
	"fmt"
)

var (
	ErrServiceMisconfigured      = errors.New("service misconfigured")
	ErrInvalidDuration           = errors.New("invalid duration")
	ErrInvalidTimezone           = errors.New("invalid timezone")
	ErrEventInPast               = errors.New("event in past")
	ErrUpstreamAuthFailure       = errors.New("upstream auth failure")
	ErrUpstreamEventCreateFailed = errors.New("upstream event create failure")
)

// DetailError pairs one of the sentinel errors above with the message shown
// to the caller.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

// Errorf returns a DetailError of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &DetailError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
