package reconciler

import (
	"testing"
	"time"

	"bedcensus/internal/model"

	"github.com/stretchr/testify/require"
)

func TestResolveIdentitiesGroupsByRUT(t *testing.T) {
	d1 := model.Noon(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))
	d2 := model.Noon(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local))
	snaps := []model.Snapshot{
		{Date: d2, RUT: "11111111"},
		{Date: d1, RUT: "11111111"},
	}

	groups := resolveIdentities(snaps)
	require.Len(t, groups, 1)
	require.Equal(t, "11111111", groups[0].key)
	require.Len(t, groups[0].snapshots, 2)
	require.True(t, groups[0].snapshots[0].Date.Before(groups[0].snapshots[1].Date))
}

func TestResolveIdentitiesFallsBackToSyntheticNameKey(t *testing.T) {
	d := model.Noon(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))
	snaps := []model.Snapshot{
		{Date: d, RUT: "", NormalizedName: "PACIENTE SIN RUT"},
	}

	groups := resolveIdentities(snaps)
	require.Len(t, groups, 1)
	require.Equal(t, "NAME-PACIENTE SIN RUT", groups[0].key)
}

func TestResolveIdentitiesBackfillsRUTFromEarlierSighting(t *testing.T) {
	d1 := model.Noon(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))
	d2 := model.Noon(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local))
	snaps := []model.Snapshot{
		{Date: d1, RUT: "22222222", NormalizedName: "ANA SOTO"},
		{Date: d2, RUT: "", NormalizedName: "ANA SOTO"},
	}

	groups := resolveIdentities(snaps)
	require.Len(t, groups, 1)
	require.Equal(t, "22222222", groups[0].key)
	require.Equal(t, "22222222", groups[0].snapshots[1].RUT)
}

func TestResolveIdentitiesShortRUTNotUsedForNameBackfill(t *testing.T) {
	d1 := model.Noon(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))
	d2 := model.Noon(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local))
	snaps := []model.Snapshot{
		{Date: d1, RUT: "1", NormalizedName: "PEDRO LUCO"},
		{Date: d2, RUT: "", NormalizedName: "PEDRO LUCO"},
	}

	groups := resolveIdentities(snaps)
	require.Len(t, groups, 2)
}
