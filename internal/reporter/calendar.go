package reporter

import (
	"bedcensus/internal/model"
	"fmt"
	"time"
)

// DefaultMonthlyCap is the rolling window applied by MonthlyReports when
// the caller doesn't override it. Spec.md §9 flags the teacher's 36-month
// cap as possibly incidental; this module preserves it but makes it a
// parameter instead of a hard-coded constant.
const DefaultMonthlyCap = 36

// MonthlyReports implements spec.md §4.3.4's monthly iterator: one report
// per non-empty calendar month from the earliest event's month to the
// latest's, capped to the most recent cap months. cap <= 0 means
// DefaultMonthlyCap.
func MonthlyReports(events []*model.Event, monthCap int) []*model.Report {
	if monthCap <= 0 {
		monthCap = DefaultMonthlyCap
	}
	minDate, maxDate, ok := eventDateRange(events)
	if !ok {
		return nil
	}

	var reports []*model.Report
	cursor := firstOfMonth(minDate)
	last := firstOfMonth(maxDate)
	for !cursor.After(last) {
		start := cursor
		end := lastDayOfMonth(cursor)
		title := fmt.Sprintf("%s %d", start.Month().String(), start.Year())
		if r := ReportForPeriod(events, title, start, end); r != nil {
			reports = append(reports, r)
		}
		cursor = firstOfMonth(cursor.AddDate(0, 1, 0))
	}

	if len(reports) > monthCap {
		reports = reports[len(reports)-monthCap:]
	}
	return reports
}

// QuarterlyReport implements spec.md §4.3.4's quarterly iterator:
// start=(year, 3(quarter-1)+1, 1), end=the last day of the quarter's
// third month (e.g. Q1 is Jan 1 - Mar 31). quarter is 1-4.
func QuarterlyReport(events []*model.Event, year, quarter int) *model.Report {
	startMonth := time.Month(3*(quarter-1) + 1)
	start := time.Date(year, startMonth, 1, 12, 0, 0, 0, time.Local)
	end := lastDayOfMonth(start.AddDate(0, 2, 0))
	title := fmt.Sprintf("Q%d %d", quarter, year)
	return ReportForPeriod(events, title, start, end)
}

// QuarterlyReports generates one quarterly report per non-empty quarter
// spanning the events' date range.
func QuarterlyReports(events []*model.Event) []*model.Report {
	minDate, maxDate, ok := eventDateRange(events)
	if !ok {
		return nil
	}

	var reports []*model.Report
	year, quarter := minDate.Year(), (int(minDate.Month())-1)/3+1
	lastYear, lastQuarter := maxDate.Year(), (int(maxDate.Month())-1)/3+1
	for year < lastYear || (year == lastYear && quarter <= lastQuarter) {
		if r := QuarterlyReport(events, year, quarter); r != nil {
			reports = append(reports, r)
		}
		quarter++
		if quarter > 4 {
			quarter = 1
			year++
		}
	}
	return reports
}

// YearlyReport implements spec.md §4.3.4's yearly iterator: clamp to the
// smallest [firstSeenMin, lastSeenMax] range intersected with the
// requested year.
func YearlyReport(events []*model.Event, year int) *model.Report {
	minDate, maxDate, ok := eventDateRange(events)
	if !ok {
		return nil
	}

	yearStart := time.Date(year, time.January, 1, 12, 0, 0, 0, time.Local)
	yearEnd := time.Date(year, time.December, 31, 12, 0, 0, 0, time.Local)

	start := maxTime(yearStart, minDate)
	end := minTime(yearEnd, maxDate)
	if start.After(end) {
		return nil
	}

	title := fmt.Sprintf("%d", year)
	return ReportForPeriod(events, title, start, end)
}

// RangeReport implements spec.md §4.3.4's arbitrary-range iterator: first
// day of startMonth to last day of endMonth. Returns nil if the resulting
// window has no overlapping events (rejecting an empty overlap).
func RangeReport(events []*model.Event, startMonth, endMonth time.Time, title string) *model.Report {
	start := firstOfMonth(startMonth)
	end := lastDayOfMonth(endMonth)
	if end.Before(start) {
		return nil
	}
	if title == "" {
		title = fmt.Sprintf("%s %d - %s %d", start.Month(), start.Year(), end.Month(), end.Year())
	}
	return ReportForPeriod(events, title, start, end)
}

func eventDateRange(events []*model.Event) (min, max time.Time, ok bool) {
	if len(events) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = events[0].FirstSeen, events[0].LastSeen
	for _, e := range events[1:] {
		if e.FirstSeen.Before(min) {
			min = e.FirstSeen
		}
		if e.LastSeen.After(max) {
			max = e.LastSeen
		}
	}
	return min, max, true
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 12, 0, 0, 0, t.Location())
}

func lastDayOfMonth(t time.Time) time.Time {
	return firstOfMonth(t).AddDate(0, 1, -1)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
