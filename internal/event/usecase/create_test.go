package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-tool-service/internal/event"
	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/internal/event/usecase"
	"calendar-tool-service/internal/model"
	"calendar-tool-service/pkg/datemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	accessToken string
	refreshErr  error
	created     model.CalendarEvent
	insertErr   error

	refreshCalls int
	insertCalls  int
	gotToken     string
	gotEvent     model.NewEvent
}

func (m *mockRepo) RefreshAccessToken(ctx context.Context) (string, error) {
	m.refreshCalls++
	return m.accessToken, m.refreshErr
}

func (m *mockRepo) InsertEvent(ctx context.Context, accessToken string, opt repository.InsertEventOptions) (model.CalendarEvent, error) {
	m.insertCalls++
	m.gotToken = accessToken
	m.gotEvent = opt.Event
	return m.created, m.insertErr
}

var (
	fullConfig = event.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RefreshToken: "1//refresh",
	}
	// 2026-10-15 12:00 UTC
	fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
)

func mustTimestamp(t *testing.T, s string) datemath.Timestamp {
	t.Helper()
	ts, err := datemath.ParseTimestamp(s)
	require.NoError(t, err)
	return ts
}

func newUseCase(cfg event.Config, repo *mockRepo) event.UseCase {
	return usecase.New(&mockLogger{}, cfg, repo, usecase.WithClock(func() time.Time { return fixedNow }))
}

func TestCreate_Success(t *testing.T) {
	repo := &mockRepo{
		accessToken: "ya29.access",
		created: model.CalendarEvent{
			ID:       "abc123",
			HtmlLink: "https://calendar.google.com/event?eid=abc123",
			Summary:  "Sync",
			Start:    "2030-01-15T10:00:00-08:00",
			End:      "2030-01-15T10:30:00-08:00",
		},
	}
	uc := newUseCase(fullConfig, repo)

	out, err := uc.Create(context.Background(), event.CreateInput{
		Name:            "Ada",
		Title:           "Sync",
		Start:           mustTimestamp(t, "2030-01-15T10:00:00"),
		DurationMinutes: 30,
		Timezone:        "America/Los_Angeles",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", out.EventID)
	assert.Equal(t, "primary", out.CalendarID)
	assert.Equal(t, "https://calendar.google.com/event?eid=abc123", out.HtmlLink)
	assert.Len(t, out.Fingerprint, event.FingerprintLength)

	assert.Equal(t, 1, repo.refreshCalls)
	assert.Equal(t, 1, repo.insertCalls)
	assert.Equal(t, "ya29.access", repo.gotToken)

	ev := repo.gotEvent
	assert.Equal(t, "primary", ev.CalendarID)
	assert.Equal(t, "Sync", ev.Summary)
	assert.Equal(t, "America/Los_Angeles", ev.Timezone)
	assert.Equal(t, "2030-01-15T10:00:00-08:00", datemath.FormatISO(ev.Start))
	assert.Equal(t, "2030-01-15T10:30:00-08:00", datemath.FormatISO(ev.End))
	assert.Equal(t, "Scheduled by voice assistant for Ada. RequestId: "+out.Fingerprint, ev.Description)
	assert.Empty(t, ev.Attendees)
}

func TestCreate_FallsBackToLocalValues(t *testing.T) {
	repo := &mockRepo{accessToken: "ya29.access", created: model.CalendarEvent{ID: "only-id"}}
	uc := newUseCase(fullConfig, repo)

	out, err := uc.Create(context.Background(), event.CreateInput{
		Name:  "Ada",
		Start: mustTimestamp(t, "2030-01-15T18:00:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Meeting", out.Summary)
	assert.Equal(t, "2030-01-15T10:00:00-08:00", out.Start)
	assert.Equal(t, "2030-01-15T10:30:00-08:00", out.End)
	assert.Empty(t, out.HtmlLink)
	assert.Equal(t, "America/Los_Angeles", repo.gotEvent.Timezone)
}

func TestCreate_UsesConfiguredCalendarAndTimezone(t *testing.T) {
	cfg := fullConfig
	cfg.CalendarID = "team@example.com"
	cfg.DefaultTimezone = "Europe/Berlin"
	repo := &mockRepo{accessToken: "ya29.access", created: model.CalendarEvent{ID: "x"}}
	uc := newUseCase(cfg, repo)

	out, err := uc.Create(context.Background(), event.CreateInput{
		Name:            "Ada",
		Start:           mustTimestamp(t, "2030-06-01T09:00:00"),
		DurationMinutes: 60,
		Invitees:        []string{"bob@example.com", "eve@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, "team@example.com", out.CalendarID)
	assert.Equal(t, "team@example.com", repo.gotEvent.CalendarID)
	assert.Equal(t, "Europe/Berlin", repo.gotEvent.Timezone)
	assert.Equal(t, "2030-06-01T09:00:00+02:00", out.Start)
	assert.Equal(t, []string{"bob@example.com", "eve@example.com"}, repo.gotEvent.Attendees)
}

func TestCreate_Failures(t *testing.T) {
	future := "2030-01-15T10:00:00"

	tests := []struct {
		name        string
		cfg         event.Config
		repo        *mockRepo
		input       event.CreateInput
		wantKind    error
		wantDetail  string
		wantRefresh int
		wantInsert  int
	}{
		{
			name:       "Missing refresh token",
			cfg:        event.Config{ClientID: "id", ClientSecret: "secret"},
			repo:       &mockRepo{},
			input:      event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future)},
			wantKind:   event.ErrServiceMisconfigured,
			wantDetail: "Server missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET/GOOGLE_REFRESH_TOKEN env vars.",
		},
		{
			name:       "Unknown timezone",
			cfg:        fullConfig,
			repo:       &mockRepo{},
			input:      event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future), Timezone: "Mars/Olympus_Mons"},
			wantKind:   event.ErrInvalidTimezone,
			wantDetail: "Invalid timezone: Mars/Olympus_Mons",
		},
		{
			name:       "Duration too short",
			cfg:        fullConfig,
			repo:       &mockRepo{},
			input:      event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future), DurationMinutes: 14},
			wantKind:   event.ErrInvalidDuration,
			wantDetail: "durationMinutes must be between 15 and 240",
		},
		{
			name:       "Duration too long",
			cfg:        fullConfig,
			repo:       &mockRepo{},
			input:      event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future), DurationMinutes: 241},
			wantKind:   event.ErrInvalidDuration,
			wantDetail: "durationMinutes must be between 15 and 240",
		},
		{
			name:       "Start in the past",
			cfg:        fullConfig,
			repo:       &mockRepo{},
			input:      event.CreateInput{Name: "Ada", Start: mustTimestamp(t, "2026-10-15T04:59:00"), Timezone: "America/Los_Angeles"},
			wantKind:   event.ErrEventInPast,
			wantDetail: "Start time is in the past for timezone America/Los_Angeles. Please choose a future time.",
		},
		{
			name: "Token refresh rejected",
			cfg:  fullConfig,
			repo: &mockRepo{refreshErr: &repository.UpstreamError{
				Kind: repository.ErrTokenRefresh,
				Body: `{"error":"invalid_grant"}`,
			}},
			input:       event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future)},
			wantKind:    event.ErrUpstreamAuthFailure,
			wantDetail:  `Google token refresh failed: {"error":"invalid_grant"}`,
			wantRefresh: 1,
		},
		{
			name: "Insert rejected",
			cfg:  fullConfig,
			repo: &mockRepo{accessToken: "ya29", insertErr: &repository.UpstreamError{
				Kind: repository.ErrInsertEvent,
				Body: `{"error":{"code":404,"message":"Not Found"}}`,
			}},
			input:       event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future)},
			wantKind:    event.ErrUpstreamEventCreateFailed,
			wantDetail:  `Google Calendar insert failed: {"error":{"code":404,"message":"Not Found"}}`,
			wantRefresh: 1,
			wantInsert:  1,
		},
		{
			name:        "Insert transport error",
			cfg:         fullConfig,
			repo:        &mockRepo{accessToken: "ya29", insertErr: errors.New("dial tcp: timeout")},
			input:       event.CreateInput{Name: "Ada", Start: mustTimestamp(t, future)},
			wantKind:    event.ErrUpstreamEventCreateFailed,
			wantDetail:  "Google Calendar insert failed: dial tcp: timeout",
			wantRefresh: 1,
			wantInsert:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.cfg, tt.repo)

			_, err := uc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantDetail, err.Error())
			assert.Equal(t, tt.wantRefresh, tt.repo.refreshCalls, "token refresh calls")
			assert.Equal(t, tt.wantInsert, tt.repo.insertCalls, "insert calls")
		})
	}
}

func TestCreate_StartEqualToNowIsAccepted(t *testing.T) {
	repo := &mockRepo{accessToken: "ya29", created: model.CalendarEvent{ID: "x"}}
	uc := newUseCase(fullConfig, repo)

	// fixedNow in Los Angeles (PDT) is 05:00.
	_, err := uc.Create(context.Background(), event.CreateInput{
		Name:     "Ada",
		Start:    mustTimestamp(t, "2026-10-15T05:00:00"),
		Timezone: "America/Los_Angeles",
	})

	require.NoError(t, err)
}

func TestEnsureConfigured(t *testing.T) {
	assert.NoError(t, newUseCase(fullConfig, &mockRepo{}).EnsureConfigured())

	for _, cfg := range []event.Config{
		{ClientSecret: "s", RefreshToken: "r"},
		{ClientID: "i", RefreshToken: "r"},
		{ClientID: "i", ClientSecret: "s"},
	} {
		assert.ErrorIs(t, newUseCase(cfg, &mockRepo{}).EnsureConfigured(), event.ErrServiceMisconfigured)
	}
}
