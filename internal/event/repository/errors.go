package repository

import (
	"errors"
	"fmt"
)

var (
	ErrTokenRefresh = errors.New("token refresh failed")
	ErrInsertEvent  = errors.New("event insert failed")
)

// UpstreamError carries the provider's response body for a failed call.
type UpstreamError struct {
	Kind error
	Body string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Kind }
