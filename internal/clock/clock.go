// Package clock parses free-text times of day and formats them for display.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRejected is returned for any input that does not resolve to exactly one time of day.
var ErrRejected = errors.New("invalid time")

// Period is the half of the day a time falls in.
type Period int

// Periods of the day.
const (
	AM Period = iota
	PM
)

// String returns "AM" or "PM".
func (p Period) String() string {
	if p == PM {
		return "PM"
	}
	return "AM"
}

// Time is a fully resolved time of day on the 24-hour clock.
type Time struct {
	hour   int
	minute int
	second int
}

// New returns the time for the given 24-hour components.
func New(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Time{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrRejected, hour, minute, second)
	}
	return Time{hour: hour, minute: minute, second: second}, nil
}

// FromHour12 returns the time for a 12-hour clock reading, where hour12 is 1-12.
func FromHour12(hour12, minute, second int, p Period) (Time, error) {
	if hour12 < 1 || hour12 > 12 {
		return Time{}, fmt.Errorf("%w: hour %d", ErrRejected, hour12)
	}
	return New(to24(hour12, p), minute, second)
}

// Hour returns the hour on the 24-hour clock, 0-23.
func (t Time) Hour() int { return t.hour }

// Minute returns the minute, 0-59.
func (t Time) Minute() int { return t.minute }

// Second returns the second, 0-59.
func (t Time) Second() int { return t.second }

// Period reports whether t is before or after noon.
func (t Time) Period() Period {
	if t.hour < 12 {
		return AM
	}
	return PM
}

// Hour12 returns the hour on the 12-hour clock, 1-12.
func (t Time) Hour12() int {
	if h := t.hour % 12; h != 0 {
		return h
	}
	return 12
}

// In returns t moved to period p, keeping the 12-hour reading.
func (t Time) In(p Period) Time {
	t.hour = to24(t.Hour12(), p)
	return t
}

// String formats t as "H:MM:SS AM".
func (t Time) String() string {
	return fmt.Sprintf("%d:%02d:%02d %s", t.Hour12(), t.minute, t.second, t.Period())
}

// Format is the display form of t. Parse(Format(t)) always returns t.
func Format(t Time) string {
	return t.String()
}

// MarshalText encodes t in its display form.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse resolves user input such as "11PM", "23:45:00" or "9 am" to a time of day.
//
// The numeric part is H, H:MM or H:MM:SS, optionally followed by an AM/PM marker in
// any case. With a marker, hours 0-12 are read on the 12-hour clock and hours 13-23
// are taken as already being on the 24-hour clock. Without a marker, 0 is midnight,
// 1-6 are afternoon hours and 7-23 are taken as is.
func Parse(raw string) (Time, error) {
	rejected := fmt.Errorf("%w: %q", ErrRejected, raw)

	s := strings.TrimSpace(raw)
	numeric, p, marked := splitMarker(s)
	if numeric == "" {
		return Time{}, rejected
	}

	fields := strings.Split(numeric, ":")
	if len(fields) > 3 {
		return Time{}, rejected
	}
	var v [3]int
	for i, f := range fields {
		n, ok := atoi(f)
		if !ok {
			return Time{}, rejected
		}
		v[i] = n
	}
	hour, minute, second := v[0], v[1], v[2]
	if minute > 59 || second > 59 || hour > 23 {
		return Time{}, rejected
	}

	switch {
	case marked && hour <= 12:
		hour = to24(hour, p)
	case !marked && hour >= 1 && hour <= 6:
		hour += 12
	}
	return Time{hour: hour, minute: minute, second: second}, nil
}

// splitMarker separates a trailing AM/PM marker and any whitespace before it.
func splitMarker(s string) (string, Period, bool) {
	if len(s) < 2 {
		return s, AM, false
	}
	var p Period
	switch strings.ToUpper(s[len(s)-2:]) {
	case "AM":
		p = AM
	case "PM":
		p = PM
	default:
		return s, AM, false
	}
	return strings.TrimRight(s[:len(s)-2], " \t"), p, true
}

// atoi accepts one or two ASCII digits and nothing else.
func atoi(f string) (int, bool) {
	if len(f) == 0 || len(f) > 2 {
		return 0, false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(f)
	return n, err == nil
}

func to24(hour12 int, p Period) int {
	h := hour12 % 12
	if p == PM {
		h += 12
	}
	return h
}
