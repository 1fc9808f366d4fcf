package datemath

import "time"

// Timestamp is a parsed start time. HasOffset is false for naive inputs
// such as "2030-01-15T10:00:00"; Time then holds the clock-face value in UTC.
type Timestamp struct {
	Time      time.Time
	HasOffset bool
}

// Interval is a start/end pair anchored to one zone.
type Interval struct {
	Start time.Time
	End   time.Time
}
