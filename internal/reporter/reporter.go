// Package reporter computes per-period occupancy and length-of-stay
// reports from a reconciled event timeline (spec.md §4.3). It holds no
// state between calls: every invocation deep-copies the events it needs so
// reports built from the same underlying timeline never share mutable
// state (spec.md §8 property 7).
package reporter

import (
	"bedcensus/internal/model"
	"time"
)

// ReportForPeriod implements spec.md §4.3's top-level entry point. It
// returns nil when no event overlaps [start, end] — the Go rendering of
// the source's Option<Report> (spec.md §7, NoDataForPeriod).
func ReportForPeriod(events []*model.Event, title string, start, end time.Time) *model.Report {
	selected := selectEvents(events, start, end)
	if len(selected) == 0 {
		return nil
	}

	window := end
	if today := model.Noon(now()); window.After(today) {
		window = today
	}

	// A window that starts entirely in the future still yields a report
	// (the events overlap), just with an empty daily series.
	var dailyStats []model.DailyStats
	if !window.Before(start) {
		dailyStats = computeDailyStats(selected, start, window)
	}

	admissions, discharges, upcPatients, avgLOS := computeAggregates(selected, dailyStats, start, end)

	return &model.Report{
		Title:            title,
		StartDate:        start,
		EndDate:          end,
		Patients:         selected,
		DailyStats:       dailyStats,
		TotalAdmissions:  admissions,
		TotalDischarges:  discharges,
		TotalUpcPatients: upcPatients,
		AvgLOS:           avgLOS,
	}
}
