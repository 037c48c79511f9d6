package model

import "errors"

// ParseError reports that a workbook could not be opened or decoded. It is
// fatal for the file it names but never aborts a multi-file batch — callers
// (internal/ingest) collect one per failing file and continue with the
// rest.
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	return "parse " + e.File + ": " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ErrEmptyInput marks a workbook that parsed successfully but produced zero
// snapshots. It is informational, not fatal: callers get an empty slice and
// may choose to log and move on.
var ErrEmptyInput = errors.New("no snapshots extracted")

// ErrNoDataForPeriod marks a reporting window with no overlapping events.
// The Reporter itself signals that case by returning a nil *Report and does
// not return this error.
var ErrNoDataForPeriod = errors.New("no events overlap the requested period")
