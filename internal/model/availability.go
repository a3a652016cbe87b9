package model

import "slices"

// Availability maps a court number to its free intervals for one date.
// It is rebuilt from scratch on every polling tick.
type Availability map[int][]Interval

// Courts returns the court numbers in ascending order.
func (a Availability) Courts() []int {
	courts := make([]int, 0, len(a))
	for court := range a {
		courts = append(courts, court)
	}
	slices.Sort(courts)
	return courts
}
