package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidZone      = errors.New("invalid timezone")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

const (
	isoSeconds = "2006-01-02T15:04:05"
	isoMicros  = ".000000"
	isoOffset  = "-07:00"
)

var (
	offsetLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04:05Z07",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z0700",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

// Zone is a resolved IANA timezone.
type Zone struct {
	name     string
	location *time.Location
}

// LoadZone resolves an IANA timezone name, e.g. "America/Los_Angeles".
// Empty and "Local" are rejected so the result never depends on the host.
func LoadZone(name string) (Zone, error) {
	if name == "" || name == "Local" {
		return Zone{}, fmt.Errorf("%w: %q", ErrInvalidZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("%w: %q: %v", ErrInvalidZone, name, err)
	}
	return Zone{name: name, location: loc}, nil
}

// Name returns the IANA name the zone was loaded from.
func (z Zone) Name() string {
	return z.name
}

// Location returns the underlying *time.Location.
func (z Zone) Location() *time.Location {
	return z.location
}

// ParseTimestamp parses an ISO-8601 date-time with or without a UTC offset.
// A space is accepted in place of the "T" separator.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t, HasOffset: true}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// Localize anchors ts to the zone. Naive timestamps keep their clock-face
// value; offset-bearing ones keep their instant. An ambiguous naive time
// takes the earlier instant, and one inside a gap is read with the offset in
// force before the transition, so it lands after the gap.
func (z Zone) Localize(ts Timestamp) time.Time {
	if ts.HasOffset {
		return ts.Time.In(z.location)
	}
	w := ts.Time
	t := time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), z.location)
	if t.Day() == w.Day() && t.Hour() == w.Hour() && t.Minute() == w.Minute() {
		return t
	}

	// w falls in a gap skipped by a forward transition. time.Date resolved it
	// to an earlier instant that still carries the offset in force before the
	// transition; anchor the clock face to that offset instead.
	_, offset := t.Zone()
	return w.Add(-time.Duration(offset) * time.Second).In(z.location)
}

// Interval localizes ts and adds d to get the end.
func (z Zone) Interval(ts Timestamp, d time.Duration) Interval {
	start := z.Localize(ts)
	return Interval{Start: start, End: start.Add(d)}
}

// Now returns now expressed in the zone.
func (z Zone) Now(now time.Time) time.Time {
	return now.In(z.location)
}

// ISO returns the canonical ISO form of the timestamp as it was supplied:
// no offset for naive input, microseconds only when non-zero.
func (ts Timestamp) ISO() string {
	if ts.HasOffset {
		return FormatISO(ts.Time)
	}
	return ts.Time.Format(isoLayout(ts.Time, false))
}

// FormatISO formats t as "2006-01-02T15:04:05[.000000]-07:00".
func FormatISO(t time.Time) string {
	return t.Format(isoLayout(t, true))
}

func isoLayout(t time.Time, withOffset bool) string {
	layout := isoSeconds
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout += isoMicros
	}
	if withOffset {
		layout += isoOffset
	}
	return layout
}
