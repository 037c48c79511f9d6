package model

import "time"

// EpochDay is a day-number representation: days since the Unix epoch,
// computed from a date normalized to local noon. Using an integer instead
// of raw time.Time subtraction keeps gap and length-of-stay arithmetic
// immune to DST transitions.
type EpochDay int64

// Noon normalizes t to 12:00:00 in its own location, so that two
// observations of "the same calendar day" compare equal regardless of the
// hour they were recorded at.
func Noon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// ToEpochDay converts a noon-normalized date to its day number.
func ToEpochDay(t time.Time) EpochDay {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	return EpochDay(days)
}

// AddDays returns the date that is n calendar days after t, preserving the
// noon normalization.
func AddDays(t time.Time, n int) time.Time {
	return Noon(t.AddDate(0, 0, n))
}

// DaysBetween returns b - a in whole calendar days (can be negative).
func DaysBetween(a, b time.Time) int {
	return int(ToEpochDay(b) - ToEpochDay(a))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
