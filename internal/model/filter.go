package model

import "time"

// Window is the user's search constraint: interval starts must fall strictly
// between After and Before, and intervals must last at least MinDuration.
type Window struct {
	After       ClockTime
	Before      ClockTime
	MinDuration time.Duration
}

// Matches reports whether a single interval satisfies the window.
func (w Window) Matches(iv Interval) bool {
	return iv.Start > w.After && iv.Start < w.Before && iv.Duration() >= w.MinDuration
}

// Filter returns a new Availability holding, per court, only the intervals
// that match the window. Courts with no matching interval are dropped.
// Interval order within a court is preserved.
func (w Window) Filter(a Availability) Availability {
	filtered := make(Availability)
	for court, intervals := range a {
		for _, iv := range intervals {
			if w.Matches(iv) {
				filtered[court] = append(filtered[court], iv)
			}
		}
	}
	return filtered
}
