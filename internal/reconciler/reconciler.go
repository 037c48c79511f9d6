// Package reconciler groups snapshots by patient identity, segments each
// identity's timeline into discrete hospitalization Events, and closes
// those events on explicit or implicit discharge (spec.md §4.2). It never
// fails — soft inconsistencies are annotated on the affected Event instead
// (spec.md §4.2.6).
package reconciler

import (
	"bedcensus/internal/model"
	"sort"
	"time"
)

// Reconcile implements the full §4.2 pipeline. Calling it twice on the
// same snapshot slice yields identical events, since identity resolution
// re-sorts by date before doing anything else (spec.md §8 property 6).
// Reordering the input changes nothing as long as snapshots sharing a date
// keep their relative order; same-day merging prefers the later one.
func Reconcile(snapshots []model.Snapshot) []*model.Event {
	if len(snapshots) == 0 {
		return nil
	}

	globalMaxDate := snapshots[0].Date
	for _, s := range snapshots[1:] {
		if s.Date.After(globalMaxDate) {
			globalMaxDate = s.Date
		}
	}

	groups := resolveIdentities(snapshots)

	var events []*model.Event
	for _, g := range groups {
		consolidated := consolidateSameDay(g.snapshots)
		events = append(events, segment(g.key, consolidated, globalMaxDate)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Identity != events[j].Identity {
			return events[i].Identity < events[j].Identity
		}
		return events[i].FirstSeen.Before(events[j].FirstSeen)
	})
	return events
}

// segment implements the state machine of spec.md §4.2.3-§4.2.5 for one
// identity's consolidated, date-ordered snapshots.
func segment(identity string, snapshots []model.Snapshot, globalMaxDate time.Time) []*model.Event {
	var closed []*model.Event
	var cur *model.Event

	for _, snap := range snapshots {
		if cur == nil {
			cur = openEvent(identity, snap)
			if closedImmediately(cur) {
				finalizeLOS(cur)
				closed = append(closed, cur)
				cur = nil
			}
			continue
		}

		gapDays := model.DaysBetween(cur.LastSeen, snap.Date) - 1
		if gapDays > 1 {
			// Implicit discharge: close the open event at lastSeen+1,
			// then start a fresh one from this snapshot.
			discharge := model.AddDays(cur.LastSeen, 1)
			cur.DischargeDate = &discharge
			cur.Status = model.EventDischarged
			finalizeLOS(cur)
			closed = append(closed, cur)

			cur = openEvent(identity, snap)
			if closedImmediately(cur) {
				finalizeLOS(cur)
				closed = append(closed, cur)
				cur = nil
			}
			continue
		}

		applyContinuation(cur, snap)
	}

	if cur != nil {
		finalizeOpenEvent(cur, globalMaxDate)
		closed = append(closed, cur)
	}

	return closed
}

func openEvent(identity string, snap model.Snapshot) *model.Event {
	e := &model.Event{
		Identity:   identity,
		FirstSeen:  snap.Date,
		LastSeen:   snap.Date,
		Status:     model.EventHospitalized,
		IsUPC:      snap.IsUPC,
		WasEverUPC: snap.IsUPC,
		Name:       snap.Name,
		Diagnosis:  snap.Diagnosis,
		BedType:    snap.BedType,
	}
	e.AppendHistory(snap.Date)

	if snap.Status != model.SnapshotHospitalized {
		stampExit(e, snap)
	}
	return e
}

// closedImmediately reports whether openEvent already stamped an exit
// (the snapshot that opened the event was itself Discharged/Transferred).
func closedImmediately(e *model.Event) bool {
	return e.Status != model.EventHospitalized
}

// applyContinuation implements the "Open + snap, no gap" transition,
// including resurrection of a prematurely closed event.
func applyContinuation(cur *model.Event, snap model.Snapshot) {
	if cur.Status == model.EventDischarged || cur.Status == model.EventTransferred {
		cur.DischargeDate = nil
		cur.TransferDate = nil
		cur.Status = model.EventHospitalized
		cur.Inconsistencies = append(cur.Inconsistencies,
			"explicit discharge reverted due to later occupancy")
	}

	cur.LastSeen = snap.Date
	cur.AppendHistory(snap.Date)
	if snap.Name != "" {
		cur.Name = snap.Name
	}
	cur.BedType = snap.BedType
	cur.IsUPC = snap.IsUPC
	if snap.IsUPC {
		cur.WasEverUPC = true
	}
	if len(snap.Diagnosis) > len(cur.Diagnosis) {
		cur.Diagnosis = snap.Diagnosis
	}

	if snap.Status != model.SnapshotHospitalized {
		stampExit(cur, snap)
	}
}

func stampExit(e *model.Event, snap model.Snapshot) {
	switch snap.Status {
	case model.SnapshotDischarged:
		d := snap.Date
		e.DischargeDate = &d
		e.Status = model.EventDischarged
	case model.SnapshotTransferred:
		d := snap.Date
		e.TransferDate = &d
		e.Status = model.EventTransferred
	}
}

// finalizeOpenEvent implements spec.md §4.2.4: decide whether an event
// that is still Hospitalized at the end of its group's data stays open or
// receives an implicit discharge, then computes LOS either way.
func finalizeOpenEvent(e *model.Event, globalMaxDate time.Time) {
	if e.Status == model.EventHospitalized {
		if !model.SameDay(e.LastSeen, globalMaxDate) {
			discharge := model.AddDays(e.LastSeen, 1)
			e.DischargeDate = &discharge
			e.Status = model.EventDischarged
		}
	}
	finalizeLOS(e)
}

// finalizeLOS implements spec.md §4.2.5.
func finalizeLOS(e *model.Event) {
	exit := e.LastSeen
	if e.ExitDate() != nil {
		exit = *e.ExitDate()
	}
	los := model.DaysBetween(e.FirstSeen, exit)
	if los < 1 {
		los = 1
	}
	e.LOS = los
}
