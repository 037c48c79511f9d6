package model

import "time"

// DailyStats holds the occupancy and movement counters for a single
// calendar day within a Report's window.
type DailyStats struct {
	Date            time.Time
	TotalOccupancy  int
	UpcOccupancy    int
	NonUpcOccupancy int
	Admissions      int
	Discharges      int
	Transfers       int
}

// Report is the result of asking the Reporter for a (start, end) window.
type Report struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time

	// Patients are deep copies of the events that overlap the window; the
	// Reporter mutates DaysInPeriod on these copies only.
	Patients []*Event

	// DailyStats is ordered by date ascending, with trailing no-movement
	// days trimmed (see Reporter §4.3.2).
	DailyStats []DailyStats

	TotalAdmissions  int
	TotalDischarges  int
	TotalUpcPatients int
	AvgLOS           float64

	// OccupancyRate is always zero: no bed-capacity input is modeled.
	// Kept as a placeholder field for a future capacity-aware computation.
	OccupancyRate float64
}
