package model

import "time"

// Snapshot is one observation of one patient on one calendar day, decoded
// from a single worksheet row by the Extractor.
type Snapshot struct {
	Date time.Time // normalized to local noon, see Noon.

	RUT            string // cleaned national identifier; may be empty.
	Name           string // original-cased, for display.
	NormalizedName string // accent-stripped, uppercase, letters+space only.

	Diagnosis string
	BedType   string // one of the closed set; INDEFINIDO if unknown.
	IsUPC     bool

	Status SnapshotStatus

	SourceFile string
}

// HasIdentity reports the invariant that either RUT or NormalizedName is
// non-empty; blocked-bed placeholder rows never reach this point.
func (s Snapshot) HasIdentity() bool {
	return s.RUT != "" || s.NormalizedName != ""
}
