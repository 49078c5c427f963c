// Package dates handles the plan calendar
// Days are ISO calendar dates without a time component, normalized to UTC midnight
// Weeks start on Monday
package dates

import (
	"time"

	perr "mealboard/internal/platform/errors"
)

// Layout is the wire format for a plan day
const Layout = "2006-01-02"

// Horizon caps how far ahead a slot may be scheduled
const Horizon = 28 * 24 * time.Hour

// Floor is the earliest day the planner accepts
var Floor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDay parses an ISO day string to UTC midnight
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, perr.InvalidArgf("date must be YYYY-MM-DD, got %q", s)
	}
	return t.UTC(), nil
}

// FormatDay renders a day in the wire format
func FormatDay(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Truncate drops the time component leaving UTC midnight
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Within rejects days outside the plannable window relative to now
// the window is [Floor, today+Horizon] inclusive
func Within(day, now time.Time) error {
	day = Truncate(day)
	if day.Before(Floor) {
		return perr.Validationf("date %s is before %s", FormatDay(day), FormatDay(Floor))
	}
	ceiling := Truncate(now).Add(Horizon)
	if day.After(ceiling) {
		return perr.Validationf("date %s is more than %d days ahead", FormatDay(day), int(Horizon.Hours()/24))
	}
	return nil
}

// WeekStart returns the Monday of the week containing t
func WeekStart(t time.Time) time.Time {
	t = Truncate(t)
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the week
	}
	return t.AddDate(0, 0, -(wd - 1))
}

// WeekEnd returns the Sunday of the week containing t
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}
