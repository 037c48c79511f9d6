package reconciler

import "bedcensus/internal/model"

// consolidateSameDay implements spec.md §4.2.2: merges adjacent
// same-date snapshots within one identity group into one, so segmentation
// (§4.2.3) never has to reason about more than one observation per day.
// Snapshots must already be date-sorted.
func consolidateSameDay(snapshots []model.Snapshot) []model.Snapshot {
	if len(snapshots) == 0 {
		return nil
	}

	out := make([]model.Snapshot, 0, len(snapshots))
	cur := snapshots[0]
	for _, next := range snapshots[1:] {
		if model.SameDay(cur.Date, next.Date) {
			cur = mergeSnapshots(cur, next)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

// mergeSnapshots applies the three merge rules: UPC latches true if
// either was true, a non-Hospitalized status wins over Hospitalized, and
// the longest diagnosis string wins.
func mergeSnapshots(a, b model.Snapshot) model.Snapshot {
	merged := a
	merged.IsUPC = a.IsUPC || b.IsUPC

	if a.Status == model.SnapshotHospitalized && b.Status != model.SnapshotHospitalized {
		merged.Status = b.Status
	}

	if len(b.Diagnosis) > len(merged.Diagnosis) {
		merged.Diagnosis = b.Diagnosis
	}

	// Prefer whichever side actually carries bed-type / name information,
	// defaulting to the later observation when both are present (it is
	// the more recent read of that day).
	if b.BedType != "" && b.BedType != "INDEFINIDO" {
		merged.BedType = b.BedType
	}
	if b.RUT != "" {
		merged.RUT = b.RUT
	}
	if b.Name != "" {
		merged.Name = b.Name
		merged.NormalizedName = b.NormalizedName
	}

	return merged
}
