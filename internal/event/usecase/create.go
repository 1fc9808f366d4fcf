package usecase

import (
	"context"
	"errors"
	"time"

	"calendar-tool-service/internal/event"
	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/internal/model"
	"calendar-tool-service/pkg/datemath"
)

// EnsureConfigured checks that every provider credential is present.
func (uc *implUseCase) EnsureConfigured() error {
	if !uc.cfg.Complete() {
		return event.Errorf(event.ErrServiceMisconfigured,
			"Server missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET/GOOGLE_REFRESH_TOKEN env vars.")
	}
	return nil
}

// Create normalizes the requested time, refreshes the access token and
// inserts the event. Nothing is retried.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	if err := uc.EnsureConfigured(); err != nil {
		return event.CreateOutput{}, err
	}

	input = uc.withDefaults(input)
	if input.DurationMinutes < event.MinDurationMinutes || input.DurationMinutes > event.MaxDurationMinutes {
		return event.CreateOutput{}, event.Errorf(event.ErrInvalidDuration,
			"durationMinutes must be between %d and %d", event.MinDurationMinutes, event.MaxDurationMinutes)
	}

	zone, err := datemath.LoadZone(input.Timezone)
	if err != nil {
		return event.CreateOutput{}, event.Errorf(event.ErrInvalidTimezone, "Invalid timezone: %s", input.Timezone)
	}

	interval := uc.normalize(zone, input)
	if interval.StartLocal.Before(zone.Now(uc.now())) {
		return event.CreateOutput{}, event.Errorf(event.ErrEventInPast,
			"Start time is in the past for timezone %s. Please choose a future time.", input.Timezone)
	}

	fingerprint := Fingerprint(input)
	uc.l.Infof(ctx, "uc.Create: calendar=%s start=%s timezone=%s fingerprint=%s",
		uc.cfg.CalendarID, datemath.FormatISO(interval.StartLocal), input.Timezone, fingerprint)

	accessToken, err := uc.repo.RefreshAccessToken(ctx)
	if err != nil {
		return event.CreateOutput{}, event.Errorf(event.ErrUpstreamAuthFailure,
			"Google token refresh failed: %s", upstreamBody(err))
	}

	created, err := uc.repo.InsertEvent(ctx, accessToken, repository.InsertEventOptions{
		Event: model.NewEvent{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     input.Title,
			Description: buildDescription(input.Name, fingerprint),
			Start:       interval.StartLocal,
			End:         interval.EndLocal,
			Timezone:    input.Timezone,
			Attendees:   input.Invitees,
		},
	})
	if err != nil {
		return event.CreateOutput{}, event.Errorf(event.ErrUpstreamEventCreateFailed,
			"Google Calendar insert failed: %s", upstreamBody(err))
	}

	uc.l.Infof(ctx, "uc.Create: created event id=%s fingerprint=%s", created.ID, fingerprint)

	return event.CreateOutput{
		EventID:     created.ID,
		HtmlLink:    created.HtmlLink,
		Summary:     coalesce(created.Summary, input.Title),
		Start:       coalesce(created.Start, datemath.FormatISO(interval.StartLocal)),
		End:         coalesce(created.End, datemath.FormatISO(interval.EndLocal)),
		CalendarID:  uc.cfg.CalendarID,
		Fingerprint: fingerprint,
	}, nil
}

func (uc *implUseCase) withDefaults(input event.CreateInput) event.CreateInput {
	input.Title = coalesce(input.Title, event.DefaultTitle)
	input.Timezone = coalesce(input.Timezone, uc.cfg.DefaultTimezone)
	if input.DurationMinutes == 0 {
		input.DurationMinutes = event.DefaultDurationMinutes
	}
	return input
}

func (uc *implUseCase) normalize(zone datemath.Zone, input event.CreateInput) event.Interval {
	iv := zone.Interval(input.Start, time.Duration(input.DurationMinutes)*time.Minute)
	return event.Interval{StartLocal: iv.Start, EndLocal: iv.End}
}

func upstreamBody(err error) string {
	var uErr *repository.UpstreamError
	if errors.As(err, &uErr) {
		return uErr.Body
	}
	return err.Error()
}
