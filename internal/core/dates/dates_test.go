package dates

import (
	"testing"
	"time"

	perr "mealboard/internal/platform/errors"
)

func day(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestParseDay_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "plain day", in: "2026-03-15", ok: true},
		{name: "leap day", in: "2024-02-29", ok: true},
		{name: "bad leap day", in: "2025-02-29", ok: false},
		{name: "wrong order", in: "15-03-2026", ok: false},
		{name: "slashes", in: "2026/03/15", ok: false},
		{name: "with time", in: "2026-03-15T10:00:00Z", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "month 13", in: "2026-13-01", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDay(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("ParseDay(%q) err = %v", tc.in, err)
				}
				if FormatDay(got) != tc.in {
					t.Fatalf("round trip %q -> %q", tc.in, FormatDay(got))
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseDay(%q) accepted", tc.in)
			}
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("code = %v want invalid argument", perr.CodeOf(err))
			}
		})
	}
}

func TestWithin_Table(t *testing.T) {
	now := day("2026-09-01")

	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "today", in: "2026-09-01", ok: true},
		{name: "floor itself", in: "2020-01-01", ok: true},
		{name: "day before floor", in: "2019-12-31", ok: false},
		{name: "horizon edge", in: "2026-09-29", ok: true},
		{name: "past horizon", in: "2026-09-30", ok: false},
		{name: "yesterday still plannable", in: "2026-08-31", ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Within(day(tc.in), now)
			if tc.ok && err != nil {
				t.Fatalf("Within(%s) err = %v", tc.in, err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("Within(%s) accepted", tc.in)
				}
				if !perr.IsCode(err, perr.ErrorCodeValidation) {
					t.Fatalf("code = %v want validation", perr.CodeOf(err))
				}
			}
		})
	}
}

func TestWithin_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)
	edge := time.Date(2026, 9, 29, 23, 0, 0, 0, time.UTC)
	if err := Within(edge, now); err != nil {
		t.Fatalf("horizon edge rejected: %v", err)
	}
}

func TestWeekStart_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "monday is its own start", in: "2026-08-31", want: "2026-08-31"},
		{name: "tuesday", in: "2026-09-01", want: "2026-08-31"},
		{name: "sunday belongs to prior monday", in: "2026-09-06", want: "2026-08-31"},
		{name: "saturday", in: "2026-09-05", want: "2026-08-31"},
		{name: "next monday rolls over", in: "2026-09-07", want: "2026-09-07"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(day(tc.in))
			if FormatDay(got) != tc.want {
				t.Fatalf("WeekStart(%s) = %s want %s", tc.in, FormatDay(got), tc.want)
			}
		})
	}
}

func TestWeekEnd(t *testing.T) {
	if got := FormatDay(WeekEnd(day("2026-09-02"))); got != "2026-09-06" {
		t.Fatalf("WeekEnd = %s want 2026-09-06", got)
	}
}
