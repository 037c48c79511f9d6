package model

import "time"

// Event is one continuous hospitalization of one patient, built by the
// Reconciler from a date-ordered run of consolidated Snapshots.
type Event struct {
	Identity string // RUT if known, else a synthetic "NAME-<normalized>" key.

	FirstSeen time.Time
	LastSeen  time.Time

	DischargeDate *time.Time // exclusive exit date, set on Alta.
	TransferDate  *time.Time // exclusive exit date, set on Traslado.

	Status EventStatus

	IsUPC      bool // current UPC flag.
	WasEverUPC bool // monotonic latch.

	Name      string // most recently observed display name (supplements spec.md's export contract; not propagated by the original data model).
	Diagnosis string // longest diagnosis string observed.
	BedType   string // most recently observed bed type.

	History []time.Time // ordered, de-duplicated observed dates.

	LOS int // total length of stay, in bed-days.

	DaysInPeriod int // bed-days counted within a report's window; set by Reporter.

	Inconsistencies []string
}

// ExitDate returns the effective exit date for length-of-stay and
// occupancy arithmetic: DischargeDate if set, else TransferDate, else nil
// if the event is still open.
func (e *Event) ExitDate() *time.Time {
	if e.DischargeDate != nil {
		return e.DischargeDate
	}
	return e.TransferDate
}

// AppendHistory records date in History if it isn't already the most
// recent entry (same-day consolidation happens before this is called, so
// duplicates here would only arise across already-merged snapshots).
func (e *Event) AppendHistory(date time.Time) {
	if len(e.History) > 0 && SameDay(e.History[len(e.History)-1], date) {
		return
	}
	e.History = append(e.History, date)
}
