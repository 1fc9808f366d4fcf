package googleauth

import "time"

const (
	// CalendarEventsScope grants read/write access to events only.
	CalendarEventsScope = "https://www.googleapis.com/auth/calendar.events"

	defaultTimeout = 20 * time.Second
	promptConsent  = "consent"
)
