// Package model holds the pure domain types of the watcher: times of day,
// availability intervals and the search window used to filter them.
package model

import (
	"fmt"
	"time"
)

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("parsing time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parsing time %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is one published availability window on a single day.
// Start is never after End; there is no wraparound past midnight.
type Interval struct {
	Start ClockTime
	End   ClockTime
}

// ParseInterval parses a schedule-cell label of the form "HH:MM - HH:MM".
// Labels whose end precedes their start are rejected.
func ParseInterval(s string) (Interval, error) {
	var start, end string
	if _, err := fmt.Sscanf(s, "%5s - %5s", &start, &end); err != nil {
		return Interval{}, fmt.Errorf("parsing interval %q: %w", s, err)
	}
	from, err := ParseClock(start)
	if err != nil {
		return Interval{}, fmt.Errorf("parsing interval %q: %w", s, err)
	}
	to, err := ParseClock(end)
	if err != nil {
		return Interval{}, fmt.Errorf("parsing interval %q: %w", s, err)
	}
	if to < from {
		return Interval{}, fmt.Errorf("parsing interval %q: end before start", s)
	}
	return Interval{Start: from, End: to}, nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start, iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.End-iv.Start) * time.Minute
}

// MergeAdjacent collapses runs of back-to-back intervals into single spans.
// Intervals must already be in schedule order; the input is not modified.
func MergeAdjacent(intervals []Interval) []Interval {
	if len(intervals) < 2 {
		return intervals
	}
	merged := make([]Interval, 0, len(intervals))
	current := intervals[0]
	for _, next := range intervals[1:] {
		if current.End == next.Start {
			current.End = next.End
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
