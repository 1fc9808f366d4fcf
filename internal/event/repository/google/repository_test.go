package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/internal/model"
	"calendar-tool-service/pkg/gcalendar"
	"calendar-tool-service/pkg/googleauth"
	pkgLog "calendar-tool-service/pkg/log"
)

type fakeTokens struct {
	token string
	err   error
	got   string
}

func (f *fakeTokens) AccessToken(ctx context.Context, refreshToken string) (string, error) {
	f.got = refreshToken
	return f.token, f.err
}

type fakeCalendar struct {
	event *gcalendar.Event
	err   error
	got   gcalendar.CreateEventRequest
	token string
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.token = accessToken
	f.got = req
	return f.event, f.err
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tokens := &fakeTokens{token: "ya29.fresh"}
		repo := New(pkgLog.NewNop(), tokens, &fakeCalendar{}, "1//stored")

		token, err := repo.RefreshAccessToken(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "ya29.fresh", token)
		assert.Equal(t, "1//stored", tokens.got)
	})

	t.Run("Provider body is kept", func(t *testing.T) {
		tokens := &fakeTokens{err: &googleauth.ProviderError{StatusCode: 400, Body: `{"error":"invalid_grant"}`}}
		repo := New(pkgLog.NewNop(), tokens, &fakeCalendar{}, "1//stored")

		_, err := repo.RefreshAccessToken(context.Background())

		var uErr *repository.UpstreamError
		require.ErrorAs(t, err, &uErr)
		assert.ErrorIs(t, err, repository.ErrTokenRefresh)
		assert.Equal(t, `{"error":"invalid_grant"}`, uErr.Body)
	})

	t.Run("Transport failure", func(t *testing.T) {
		tokens := &fakeTokens{err: errors.New("connection refused")}
		repo := New(pkgLog.NewNop(), tokens, &fakeCalendar{}, "1//stored")

		_, err := repo.RefreshAccessToken(context.Background())

		var uErr *repository.UpstreamError
		require.ErrorAs(t, err, &uErr)
		assert.Equal(t, "connection refused", uErr.Body)
	})
}

func TestInsertEvent(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	start := time.Date(2030, 1, 15, 10, 0, 0, 0, la)
	ev := model.NewEvent{
		CalendarID:  "primary",
		Summary:     "Sync",
		Description: "Scheduled by voice assistant for Ada. RequestId: 0123456789abcdef",
		Start:       start,
		End:         start.Add(30 * time.Minute),
		Timezone:    "America/Los_Angeles",
		Attendees:   []string{"bob@example.com"},
	}

	t.Run("Success", func(t *testing.T) {
		cal := &fakeCalendar{event: &gcalendar.Event{
			ID:       "abc123",
			Summary:  "Sync",
			HtmlLink: "https://calendar.google.com/event?eid=abc123",
			Start:    "2030-01-15T10:00:00-08:00",
			End:      "2030-01-15T10:30:00-08:00",
		}}
		repo := New(pkgLog.NewNop(), &fakeTokens{}, cal, "1//stored")

		created, err := repo.InsertEvent(context.Background(), "ya29", repository.InsertEventOptions{Event: ev})

		require.NoError(t, err)
		assert.Equal(t, model.CalendarEvent{
			ID:       "abc123",
			Summary:  "Sync",
			HtmlLink: "https://calendar.google.com/event?eid=abc123",
			Start:    "2030-01-15T10:00:00-08:00",
			End:      "2030-01-15T10:30:00-08:00",
		}, created)
		assert.Equal(t, "ya29", cal.token)
		assert.Equal(t, gcalendar.CreateEventRequest{
			CalendarID:  ev.CalendarID,
			Summary:     ev.Summary,
			Description: ev.Description,
			StartTime:   ev.Start,
			EndTime:     ev.End,
			Timezone:    ev.Timezone,
			Attendees:   ev.Attendees,
		}, cal.got)
	})

	t.Run("API body is kept", func(t *testing.T) {
		cal := &fakeCalendar{err: &gcalendar.APIError{StatusCode: 403, Body: `{"error":{"code":403}}`}}
		repo := New(pkgLog.NewNop(), &fakeTokens{}, cal, "1//stored")

		_, err := repo.InsertEvent(context.Background(), "ya29", repository.InsertEventOptions{Event: ev})

		var uErr *repository.UpstreamError
		require.ErrorAs(t, err, &uErr)
		assert.ErrorIs(t, err, repository.ErrInsertEvent)
		assert.Equal(t, `{"error":{"code":403}}`, uErr.Body)
	})
}
