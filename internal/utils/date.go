package utils

import "time"

// FirstDay returns midnight of the first day of t's month, in t's location
func FirstDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastDay returns midnight of the last day of t's month, in t's location
func LastDay(t time.Time) time.Time {
	return FirstDay(t).AddDate(0, 1, -1)
}

// EndOfDay returns the last representable instant of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, 1).
		Add(-time.Nanosecond)
}
