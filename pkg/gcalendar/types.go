package gcalendar

import (
	"fmt"
	"net/http"
	"time"
)

// Config configures the Calendar client.
type Config struct {
	// Endpoint overrides the API base, e.g. "http://127.0.0.1:9000/calendar/v3/".
	Endpoint string
	// Transport is the base round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
	Timeout   time.Duration
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/Los_Angeles"
	Attendees   []string
}

// Event is the part of the inserted event the service reports back.
// Start and End are the provider's dateTime strings and may be empty.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    string
	End      string
}

// APIError is a non-2xx response from the Calendar API. Body is unmodified.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar API returned %d: %s", e.StatusCode, e.Body)
}
