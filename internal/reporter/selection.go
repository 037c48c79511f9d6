package reporter

import (
	"bedcensus/internal/model"
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// selectEvents implements spec.md §4.3.1: pick events overlapping
// [start, end] and deep-copy them, so the per-report DaysInPeriod mutation
// (§4.3.2) never leaks into another report built from the same events
// (spec.md §8 property 7, and the source Report.Patients comment).
func selectEvents(events []*model.Event, start, end time.Time) []*model.Event {
	var selected []*model.Event
	for _, e := range events {
		exit := effectiveExit(e)
		if e.FirstSeen.After(end) {
			continue
		}
		if exit != nil && exit.Before(start) {
			continue
		}
		clone, err := cloneEvent(e)
		if err != nil {
			// A deep-copy failure means a reflection edge case in the
			// library, not a data problem; fall back to a shallow copy
			// of the value (slices still get re-sliced, so History and
			// Inconsistencies won't alias the source).
			clone = shallowCloneEvent(e)
		}
		selected = append(selected, clone)
	}
	return selected
}

// effectiveExit returns the event's exit date, or nil if it is still open
// (no discharge/transfer recorded).
func effectiveExit(e *model.Event) *time.Time {
	return e.ExitDate()
}

func cloneEvent(e *model.Event) (*model.Event, error) {
	var dst model.Event
	if err := deepcopy.Copy(&dst, e); err != nil {
		return nil, fmt.Errorf("deep copy event %s: %w", e.Identity, err)
	}
	return &dst, nil
}

func shallowCloneEvent(e *model.Event) *model.Event {
	clone := *e
	clone.History = append([]time.Time(nil), e.History...)
	clone.Inconsistencies = append([]string(nil), e.Inconsistencies...)
	if e.DischargeDate != nil {
		d := *e.DischargeDate
		clone.DischargeDate = &d
	}
	if e.TransferDate != nil {
		d := *e.TransferDate
		clone.TransferDate = &d
	}
	return &clone
}
