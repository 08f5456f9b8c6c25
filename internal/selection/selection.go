// Package selection holds the committed value of a time picker.
//
// A Selection is either empty or holds one valid time. Typed text only replaces
// the value when it parses; rejected text leaves the committed value untouched,
// so the caller can always fall back to Text() as the last known good display.
package selection

import (
	"fmt"

	"github.com/stigoleg/timepicker/internal/clock"
)

// Selection is the committed picker state. The zero value is empty.
type Selection struct {
	value      clock.Time
	valid      bool
	period     clock.Period
	remembered bool
}

// Value returns the committed time and whether there is one.
func (s Selection) Value() (clock.Time, bool) {
	return s.value, s.valid
}

// Text is the display form of the committed time, or "" when empty.
func (s Selection) Text() string {
	if !s.valid {
		return ""
	}
	return s.value.String()
}

// Period is the period the next hour pick will use: the committed value's,
// else the last one remembered, else PM.
func (s Selection) Period() clock.Period {
	switch {
	case s.valid:
		return s.value.Period()
	case s.remembered:
		return s.period
	default:
		return clock.PM
	}
}

// Set commits t.
func (s *Selection) Set(t clock.Time) {
	s.value = t
	s.valid = true
	s.period = t.Period()
	s.remembered = true
}

// Clear empties the selection. The period is still remembered.
func (s *Selection) Clear() {
	s.value = clock.Time{}
	s.valid = false
}

// Commit parses raw and commits the result. A rejected input changes nothing.
func (s *Selection) Commit(raw string) (clock.Time, error) {
	t, err := clock.Parse(raw)
	if err != nil {
		return clock.Time{}, err
	}
	s.Set(t)
	return t, nil
}

// SelectHour picks hour12 (1-12) from the hour list.
func (s *Selection) SelectHour(hour12 int) (clock.Time, error) {
	base := s.base()
	t, err := clock.FromHour12(hour12, base.Minute(), base.Second(), s.Period())
	if err != nil {
		return clock.Time{}, err
	}
	s.Set(t)
	return t, nil
}

// SelectMinute picks a minute from the minute list.
func (s *Selection) SelectMinute(minute int) (clock.Time, error) {
	base := s.base()
	t, err := clock.New(base.Hour(), minute, base.Second())
	if err != nil {
		return clock.Time{}, fmt.Errorf("minute %d: %w", minute, err)
	}
	s.Set(t)
	return t, nil
}

// SelectSecond picks a second from the second list.
func (s *Selection) SelectSecond(second int) (clock.Time, error) {
	base := s.base()
	t, err := clock.New(base.Hour(), base.Minute(), second)
	if err != nil {
		return clock.Time{}, fmt.Errorf("second %d: %w", second, err)
	}
	s.Set(t)
	return t, nil
}

// SelectPeriod moves the committed time to p.
func (s *Selection) SelectPeriod(p clock.Period) clock.Time {
	t := s.base().In(p)
	s.Set(t)
	return t
}

// base is the time list picks are applied to: the committed value, or 12:00:00
// in the effective period.
func (s Selection) base() clock.Time {
	if s.valid {
		return s.value
	}
	t, _ := clock.FromHour12(12, 0, 0, s.Period())
	return t
}
