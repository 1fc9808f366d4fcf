package google

import (
	"context"
	"errors"

	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/internal/model"
	"calendar-tool-service/pkg/gcalendar"
	"calendar-tool-service/pkg/metrics"
)

// InsertEvent creates the event in the calendar named by opt.
func (r *implRepository) InsertEvent(ctx context.Context, accessToken string, opt repository.InsertEventOptions) (model.CalendarEvent, error) {
	ev := opt.Event
	created, err := r.calendar.CreateEvent(ctx, accessToken, gcalendar.CreateEventRequest{
		CalendarID:  ev.CalendarID,
		Summary:     ev.Summary,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Timezone:    ev.Timezone,
		Attendees:   ev.Attendees,
	})
	if err != nil {
		metrics.ObserveUpstream(metrics.CallEventInsert, metrics.OutcomeFailure)
		r.l.Errorf(ctx, "google.InsertEvent: %v", err)

		var apiErr *gcalendar.APIError
		if errors.As(err, &apiErr) {
			return model.CalendarEvent{}, &repository.UpstreamError{Kind: repository.ErrInsertEvent, Body: apiErr.Body}
		}
		return model.CalendarEvent{}, &repository.UpstreamError{Kind: repository.ErrInsertEvent, Body: err.Error()}
	}

	metrics.ObserveUpstream(metrics.CallEventInsert, metrics.OutcomeSuccess)
	return model.CalendarEvent{
		ID:       created.ID,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Start:    created.Start,
		End:      created.End,
	}, nil
}
