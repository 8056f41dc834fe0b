package model

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used throughout the core.
const DateLayout = "2006-01-02"

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

// ParseClock parses a "15:04" clock string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// EndOfDay is the latest representable clock time (23:59).
const EndOfDay ClockTime = 23*60 + 59

// TimeWindow is a half-open [Start, End) interval within a single day.
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

// Overlaps reports whether two windows share any time.
// Shared endpoints do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start < other.End && other.Start < w.End
}

// Contains reports whether the window fully covers other.
func (w TimeWindow) Contains(other TimeWindow) bool {
	return w.Start <= other.Start && other.End <= w.End
}

// DurationHours returns the window length in hours.
func (w TimeWindow) DurationHours() float64 {
	return float64(w.End-w.Start) / 60.0
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}

// ParseDate parses a canonical "2006-01-02" date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateTime combines a date string and a clock time into a single instant.
func DateTime(date string, clock ClockTime) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(clock) * time.Minute), nil
}
