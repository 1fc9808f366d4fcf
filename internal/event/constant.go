package event

const (
	DefaultTitle           = "Meeting"
	DefaultDurationMinutes = 30
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 240
	DefaultCalendarID      = "primary"
	DefaultTimezone        = "America/Los_Angeles"

	FingerprintLength = 16
)
