package http

import (
	"calendar-tool-service/internal/event"
	"calendar-tool-service/pkg/datemath"
)

// --- Request DTOs ---

// createReq is the create-event body. Optional fields are pointers so an
// absent field takes the default while an explicit empty value is rejected.
type createReq struct {
	Name            string   `json:"name"            binding:"required,min=1,max=120"`
	Title           *string  `json:"title"           binding:"omitempty,min=1,max=200"`
	Start           string   `json:"start"           binding:"required"`
	DurationMinutes *int     `json:"durationMinutes" binding:"omitempty,min=15,max=240"`
	Timezone        *string  `json:"timezone"        binding:"omitempty,min=1,max=64"`
	Invitees        []string `json:"invitees"        binding:"omitempty,dive,email"`

	start datemath.Timestamp
}

func (r createReq) toInput() event.CreateInput {
	in := event.CreateInput{
		Name:            r.Name,
		Title:           event.DefaultTitle,
		Start:           r.start,
		DurationMinutes: event.DefaultDurationMinutes,
		Invitees:        r.Invitees,
	}
	if r.Title != nil {
		in.Title = *r.Title
	}
	if r.DurationMinutes != nil {
		in.DurationMinutes = *r.DurationMinutes
	}
	if r.Timezone != nil {
		in.Timezone = *r.Timezone
	}
	return in
}

// --- Response DTOs ---

type createResp struct {
	EventID    string  `json:"eventId"`
	HtmlLink   *string `json:"htmlLink"`
	Summary    string  `json:"summary"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	CalendarID string  `json:"calendarId"`
	RequestID  string  `json:"requestId"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	resp := createResp{
		EventID:    out.EventID,
		Summary:    out.Summary,
		Start:      out.Start,
		End:        out.End,
		CalendarID: out.CalendarID,
		RequestID:  out.Fingerprint,
	}
	if out.HtmlLink != "" {
		link := out.HtmlLink
		resp.HtmlLink = &link
	}
	return resp
}
