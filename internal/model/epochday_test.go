package model_test

import (
	"testing"
	"time"

	"bedcensus/internal/model"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.Local)
	b := time.Date(2025, time.March, 4, 23, 0, 0, 0, time.Local)
	require.Equal(t, 3, model.DaysBetween(a, b))
	require.Equal(t, -3, model.DaysBetween(b, a))
}

func TestDaysBetweenAcrossDSTSpringForward(t *testing.T) {
	// US DST transitions don't affect Chile, but the underlying bug class
	// (naive duration math drifting across a clock change) is the same
	// everywhere, so this exercises it with a location that has one.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	a := time.Date(2025, time.March, 8, 9, 0, 0, 0, loc)
	b := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)
	require.Equal(t, 2, model.DaysBetween(a, b))
}

func TestAddDaysNormalizesToNoon(t *testing.T) {
	start := time.Date(2025, time.June, 1, 23, 59, 0, 0, time.Local)
	next := model.AddDays(start, 1)
	require.Equal(t, 12, next.Hour())
	require.Equal(t, time.June, next.Month())
	require.Equal(t, 2, next.Day())
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.June, 1, 6, 0, 0, 0, time.Local)
	night := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2025, time.June, 2, 0, 1, 0, 0, time.Local)

	require.True(t, model.SameDay(morning, night))
	require.False(t, model.SameDay(morning, nextDay))
}

func TestNoonNormalization(t *testing.T) {
	odd := time.Date(2025, time.June, 1, 3, 17, 42, 0, time.Local)
	n := model.Noon(odd)
	require.Equal(t, 12, n.Hour())
	require.Equal(t, 0, n.Minute())
	require.Equal(t, odd.Year(), n.Year())
	require.Equal(t, odd.YearDay(), n.YearDay())
}
