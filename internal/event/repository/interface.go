package repository

import (
	"context"

	"calendar-tool-service/internal/model"
)

// Repository is the composed interface for the provider the events live in.
type Repository interface {
	CredentialRepository
	CalendarRepository
}

// CredentialRepository turns the stored refresh credential into a
// short-lived access credential.
type CredentialRepository interface {
	// RefreshAccessToken performs exactly one refresh exchange. Results are
	// never cached.
	RefreshAccessToken(ctx context.Context) (string, error)
}

// CalendarRepository inserts events into a calendar.
type CalendarRepository interface {
	InsertEvent(ctx context.Context, accessToken string, opt InsertEventOptions) (model.CalendarEvent, error)
}
