package reporter

import (
	"testing"
	"time"

	"bedcensus/internal/model"

	"github.com/stretchr/testify/require"
)

func TestSelectEventsExcludesEventsEntirelyBeforeWindow(t *testing.T) {
	exit := d(2025, time.January, 5)
	events := []*model.Event{
		event("1", d(2025, time.January, 1), d(2025, time.January, 4), &exit, model.EventDischarged, false),
	}

	selected := selectEvents(events, d(2025, time.February, 1), d(2025, time.February, 28))
	require.Empty(t, selected)
}

func TestSelectEventsExcludesEventsEntirelyAfterWindow(t *testing.T) {
	events := []*model.Event{
		event("1", d(2025, time.March, 1), d(2025, time.March, 4), nil, model.EventHospitalized, false),
	}

	selected := selectEvents(events, d(2025, time.January, 1), d(2025, time.January, 31))
	require.Empty(t, selected)
}

func TestSelectEventsIncludesOpenEndedOngoingEvent(t *testing.T) {
	events := []*model.Event{
		event("1", d(2025, time.January, 1), d(2025, time.January, 20), nil, model.EventHospitalized, false),
	}

	selected := selectEvents(events, d(2025, time.March, 1), d(2025, time.March, 31))
	require.Len(t, selected, 1)
}

func TestSelectEventsReturnsIndependentCopies(t *testing.T) {
	events := []*model.Event{
		event("1", d(2025, time.January, 1), d(2025, time.January, 5), nil, model.EventHospitalized, false),
	}

	selected := selectEvents(events, d(2025, time.January, 1), d(2025, time.January, 31))
	require.Len(t, selected, 1)
	require.NotSame(t, events[0], selected[0])

	selected[0].History = append(selected[0].History, d(2025, time.June, 1))
	require.NotEqual(t, len(events[0].History), len(selected[0].History))
}
