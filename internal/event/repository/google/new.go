package google

import (
	"context"

	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/pkg/gcalendar"
	pkgLog "calendar-tool-service/pkg/log"
)

// TokenClient is the subset of googleauth.Client the repository uses.
type TokenClient interface {
	AccessToken(ctx context.Context, refreshToken string) (string, error)
}

// CalendarClient is the subset of gcalendar.Client the repository uses.
type CalendarClient interface {
	CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implRepository struct {
	l            pkgLog.Logger
	tokens       TokenClient
	calendar     CalendarClient
	refreshToken string
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the Google backed repository. refreshToken is the long-lived
// credential obtained once through the bootstrap helper.
func New(l pkgLog.Logger, tokens TokenClient, calendar CalendarClient, refreshToken string) *implRepository {
	return &implRepository{
		l:            l,
		tokens:       tokens,
		calendar:     calendar,
		refreshToken: refreshToken,
	}
}
