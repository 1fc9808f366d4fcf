package event

import (
	"time"

	"calendar-tool-service/pkg/datemath"
)

// Config is the immutable per-process configuration the use case needs.
type Config struct {
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	CalendarID      string
	DefaultTimezone string
}

// Complete reports whether all provider credentials are present.
func (c Config) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// --- UseCase Inputs ---

// CreateInput is an already structurally validated create-event request.
type CreateInput struct {
	Name            string
	Title           string
	Start           datemath.Timestamp
	DurationMinutes int
	Timezone        string // empty means the configured default
	Invitees        []string
}

// --- UseCase Outputs ---

// CreateOutput is what the caller gets back for a created event.
type CreateOutput struct {
	EventID     string
	HtmlLink    string
	Summary     string
	Start       string
	End         string
	CalendarID  string
	Fingerprint string
}

// Interval is the normalized start/end of a request in its timezone.
type Interval struct {
	StartLocal time.Time
	EndLocal   time.Time
}
