package ui

import (
	"fmt"

	"github.com/stigoleg/timepicker/internal/clock"
	"github.com/stigoleg/timepicker/internal/selection"
)

// column identifies one of the selection lists.
type column int

const (
	columnHour column = iota
	columnMinute
	columnSecond
	columnPeriod
	numColumns
)

func (c column) String() string {
	switch c {
	case columnHour:
		return "hour"
	case columnMinute:
		return "minute"
	case columnSecond:
		return "second"
	case columnPeriod:
		return "period"
	default:
		return "unknown"
	}
}

// list is the content of one column. Values are 12-hour clock hours, minutes,
// seconds, or a clock.Period.
type list struct {
	values []int
	labels []string
}

func newLists(minuteStep, secondStep int) [numColumns]list {
	var lists [numColumns]list

	hours := list{}
	for _, h := range []int{12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
		hours.values = append(hours.values, h)
		hours.labels = append(hours.labels, fmt.Sprintf("%2d", h))
	}
	lists[columnHour] = hours
	lists[columnMinute] = sixty(minuteStep)
	lists[columnSecond] = sixty(secondStep)
	lists[columnPeriod] = list{
		values: []int{int(clock.AM), int(clock.PM)},
		labels: []string{clock.AM.String(), clock.PM.String()},
	}
	return lists
}

func sixty(step int) list {
	if step < 1 {
		step = 1
	}
	l := list{}
	for v := 0; v < 60; v += step {
		l.values = append(l.values, v)
		l.labels = append(l.labels, fmt.Sprintf("%02d", v))
	}
	return l
}

// indexOf returns the position of v, or -1.
func (l list) indexOf(v int) int {
	for i, x := range l.values {
		if x == v {
			return i
		}
	}
	return -1
}

// pickedValue is the value of the committed time shown in column c.
func pickedValue(c column, t clock.Time) int {
	switch c {
	case columnHour:
		return t.Hour12()
	case columnMinute:
		return t.Minute()
	case columnSecond:
		return t.Second()
	default:
		return int(t.Period())
	}
}

// apply picks value v of column c into sel.
func apply(sel *selection.Selection, c column, v int) (clock.Time, error) {
	switch c {
	case columnHour:
		return sel.SelectHour(v)
	case columnMinute:
		return sel.SelectMinute(v)
	case columnSecond:
		return sel.SelectSecond(v)
	default:
		return sel.SelectPeriod(clock.Period(v)), nil
	}
}

// window returns the half-open range of rows visible around cursor.
func window(cursor, length, rows int) (int, int) {
	if rows >= length {
		return 0, length
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > length {
		start = length - rows
	}
	return start, start + rows
}

func zoneID(c column, index int) string {
	return fmt.Sprintf("%s-%d", c, index)
}

const inputZone = "input"
