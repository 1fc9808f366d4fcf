package model

import "time"

// CalendarEvent is the provider's view of an inserted event. Start and End
// are the provider's own dateTime strings and are empty when it omits them.
type CalendarEvent struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    string
	End      string
}

// NewEvent is the event the service asks the provider to create.
type NewEvent struct {
	CalendarID  string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
	Attendees   []string
}
