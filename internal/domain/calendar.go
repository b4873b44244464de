package domain

import (
	"strings"
	"time"
)

// Month is a calendar month numbered 1 (January) to 12 (December).
// The zero value is AllMonths and means "no month filter".
type Month int

// AllMonths disables the month filter in a FilterSpec.
const AllMonths Month = 0

// Weekday is a day of the week numbered 0 (Monday) to 6 (Sunday).
// This is NOT time.Weekday, which starts at Sunday. Use WeekdayOf to convert.
type Weekday int

// AllDays disables the weekday filter in a FilterSpec.
const AllDays Weekday = -1

// MonthNames is the ordered month vocabulary. MonthNames[m-1] names Month m.
var MonthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// SelectableMonths is the subset of MonthNames the interactive prompt offers.
// The published city datasets only cover January through June.
var SelectableMonths = MonthNames[:6]

// WeekdayNames is the ordered weekday vocabulary. WeekdayNames[d] names Weekday d.
var WeekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// String returns the lowercase month name, or "all" for AllMonths.
func (m Month) String() string {
	if m < 1 || m > 12 {
		return "all"
	}
	return MonthNames[m-1]
}

// String returns the lowercase weekday name, or "all" for AllDays.
func (d Weekday) String() string {
	if d < 0 || d > 6 {
		return "all"
	}
	return WeekdayNames[d]
}

// ParseMonth maps a month name (case-insensitive, trimmed) or "all" to a Month.
// Month names are 1-indexed: "january" is 1.
func ParseMonth(s string) (Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return AllMonths, true
	}
	for i, name := range MonthNames {
		if name == s {
			return Month(i + 1), true
		}
	}
	return AllMonths, false
}

// ParseWeekday maps a weekday name (case-insensitive, trimmed) or "all" to a Weekday.
// Weekday names are 0-indexed: "monday" is 0.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return AllDays, true
	}
	for i, name := range WeekdayNames {
		if name == s {
			return Weekday(i), true
		}
	}
	return AllDays, false
}

// WeekdayOf converts a time.Weekday (Sunday=0) to a Weekday (Monday=0).
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// DerivedFields are the calendar fields computed from a trip's start time.
type DerivedFields struct {
	Month   Month   // 1-12
	Weekday Weekday // 0=Monday ... 6=Sunday
	Hour    int     // 0-23
}

// Derive computes the derived calendar fields for t in t's own location.
func Derive(t time.Time) DerivedFields {
	return DerivedFields{
		Month:   Month(t.Month()),
		Weekday: WeekdayOf(t.Weekday()),
		Hour:    t.Hour(),
	}
}

// MarshalText encodes the month by name so JSON reports read naturally.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// MarshalText encodes the weekday by name so JSON reports read naturally.
func (d Weekday) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
