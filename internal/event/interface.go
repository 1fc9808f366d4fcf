package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureConfigured fails with ErrServiceMisconfigured when provider
	// credentials are missing. It does no I/O.
	EnsureConfigured() error

	// Create validates the timing of input, inserts the event into the
	// configured calendar and returns the provider's projection of it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}
