package reconciler

import (
	"bedcensus/internal/model"
	"sort"
)

// group is one identity's date-ordered (but not yet consolidated) run of
// snapshots.
type group struct {
	key       string
	snapshots []model.Snapshot
}

// resolveIdentities implements spec.md §4.2.1. Sorting happens first so
// every downstream step (consolidation, segmentation) sees a stable,
// date-ascending order — the same sort is re-applied regardless of input
// order, satisfying the round-trip invariant (spec.md §8 property 6).
func resolveIdentities(snapshots []model.Snapshot) []group {
	sorted := make([]model.Snapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	nameToRUT := map[string]string{}
	for _, s := range sorted {
		if len(s.RUT) > 3 {
			if _, exists := nameToRUT[s.NormalizedName]; !exists && s.NormalizedName != "" {
				nameToRUT[s.NormalizedName] = s.RUT
			}
		}
	}

	groups := map[string]*group{}
	var order []string
	for i := range sorted {
		s := &sorted[i]
		key := s.RUT
		if key == "" {
			if rut, ok := nameToRUT[s.NormalizedName]; ok && s.NormalizedName != "" {
				key = rut
				s.RUT = rut // back-fill so identity stays stable downstream.
			} else {
				key = "NAME-" + s.NormalizedName
			}
		}
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.snapshots = append(g.snapshots, *s)
	}

	out := make([]group, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}
