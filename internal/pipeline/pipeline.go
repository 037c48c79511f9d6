// Package pipeline is the public surface spec.md §6 describes as exposed
// "to the UI/caller": ParseWorkbook, Reconcile, ReportForPeriod, and the
// calendar-iterator family. cmd/bedcensus is the only caller in this
// module, standing in for the UI layer spec.md declares out of scope.
package pipeline

import (
	"bedcensus/internal/extractor"
	"bedcensus/internal/model"
	"bedcensus/internal/reconciler"
	"bedcensus/internal/reporter"
	"bedcensus/internal/workbook"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// ParseWorkbook implements spec.md §6's parseWorkbook: decode r (one
// workbook) into an ordered Snapshot stream. A *model.ParseError is
// returned only when the workbook itself cannot be opened — once open,
// per-sheet and per-row problems are soft failures the Extractor already
// absorbed (spec.md §4.1, §7).
func ParseWorkbook(r io.Reader, filename string, logger *zap.Logger) ([]model.Snapshot, error) {
	wb, err := workbook.Open(r)
	if err != nil {
		return nil, &model.ParseError{File: filename, Cause: err}
	}
	defer wb.Close()

	snapshots := extractor.Extract(wb, filename, logger)
	return snapshots, nil
}

// Reconcile implements spec.md §6's reconcile.
func Reconcile(snapshots []model.Snapshot) []*model.Event {
	return reconciler.Reconcile(snapshots)
}

// ReportForPeriod implements spec.md §6's reportForPeriod.
func ReportForPeriod(events []*model.Event, title string, start, end time.Time) *model.Report {
	return reporter.ReportForPeriod(events, title, start, end)
}

// MonthlyReports implements spec.md §6's monthlyReports, bounded to
// monthCap most recent months (monthCap <= 0 uses reporter.DefaultMonthlyCap).
func MonthlyReports(events []*model.Event, monthCap int) []*model.Report {
	return reporter.MonthlyReports(events, monthCap)
}

// QuarterlyReports implements spec.md §4.3.4's quarterly iterator over the
// full span of events.
func QuarterlyReports(events []*model.Event) []*model.Report {
	return reporter.QuarterlyReports(events)
}

// YearlyReport implements spec.md §4.3.4's yearly iterator.
func YearlyReport(events []*model.Event, year int) *model.Report {
	return reporter.YearlyReport(events, year)
}

// RangeReport implements spec.md §4.3.4's arbitrary-range iterator.
func RangeReport(events []*model.Event, startMonth, endMonth time.Time, title string) *model.Report {
	return reporter.RangeReport(events, startMonth, endMonth, title)
}

// ErrEmptyWorkbook is returned by callers (not ParseWorkbook itself) that
// want to surface spec.md §7's EmptyInput condition as an error rather
// than silently accepting a zero-length slice.
func ErrEmptyWorkbook(filename string, snapshots []model.Snapshot) error {
	if len(snapshots) == 0 {
		return fmt.Errorf("%s: %w", filename, model.ErrEmptyInput)
	}
	return nil
}
