package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateOrder resolves numeric dates whose first two components are both 12 or less.
type DateOrder string

// Supported date orders.
const (
	DayFirst   DateOrder = "day-first"
	MonthFirst DateOrder = "month-first"
)

// ParseDateOrder validates a configured date order. An empty value means DayFirst.
func ParseDateOrder(s string) (DateOrder, error) {
	switch DateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", DayFirst:
		return DayFirst, nil
	case MonthFirst:
		return MonthFirst, nil
	default:
		return "", fmt.Errorf("unknown date order %q (want %q or %q)", s, DayFirst, MonthFirst)
	}
}

// numericDate matches D/M/Y or D-M-Y with an optional trailing time of day.
var numericDate = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})(?:[ T]\d{1,2}:\d{2}(?::\d{2})?)?$`)

var fallbackLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
	"20060102",
}

// ParseDate parses a statement date.
//
// Numeric D/M/Y dates are tried first: a first component above 12 must be the
// day, a second component above 12 must be the day, and otherwise order picks.
// Two-digit years are in the 2000s. Other shapes fall back to common layouts.
func ParseDate(raw string, order DateOrder) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := numericDate.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}

		day, month := first, second
		switch {
		case first > 12:
		case second > 12:
			day, month = second, first
		case order == MonthFirst:
			day, month = second, first
		}

		return calendarDate(year, month, day)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// calendarDate rejects dates that time.Date would normalize, such as 31/02.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
