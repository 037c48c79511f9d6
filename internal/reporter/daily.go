package reporter

import (
	"bedcensus/internal/model"
	"time"
)

// computeDailyStats implements spec.md §4.3.2. window is the (possibly
// today-clipped) [start, end] range; events are the already-selected,
// already-deep-copied events whose DaysInPeriod this mutates.
func computeDailyStats(events []*model.Event, start, end time.Time) []model.DailyStats {
	byDate := map[int64]*model.DailyStats{}
	var order []time.Time
	for d := start; !d.After(end); d = model.AddDays(d, 1) {
		stats := &model.DailyStats{Date: d}
		byDate[dayKey(d)] = stats
		order = append(order, d)
	}

	for _, e := range events {
		exit := e.ExitDate()

		if !e.FirstSeen.Before(start) && !e.FirstSeen.After(end) {
			if s := byDate[dayKey(e.FirstSeen)]; s != nil {
				s.Admissions++
			}
		}

		if exit != nil && !exit.Before(start) && !exit.After(end) {
			if s := byDate[dayKey(*exit)]; s != nil {
				if e.Status == model.EventTransferred {
					s.Transfers++
				} else {
					s.Discharges++
				}
			}
		}

		for d := start; !d.After(end); d = model.AddDays(d, 1) {
			occupied := !d.Before(e.FirstSeen) && (exit == nil || d.Before(*exit))
			if !occupied {
				continue
			}
			s := byDate[dayKey(d)]
			if s == nil {
				continue
			}
			s.TotalOccupancy++
			if e.IsUPC {
				s.UpcOccupancy++
			} else {
				s.NonUpcOccupancy++
			}
			e.DaysInPeriod++
		}
	}

	out := make([]model.DailyStats, 0, len(order))
	for _, d := range order {
		out = append(out, *byDate[dayKey(d)])
	}
	return trimTrailingQuietDays(out)
}

// trimTrailingQuietDays drops trailing days with no occupancy and no
// admission/discharge movement from the exported series, per spec.md
// §4.3.2 ("keep internal zeros only if movement occurred").
func trimTrailingQuietDays(stats []model.DailyStats) []model.DailyStats {
	end := len(stats)
	for end > 0 {
		s := stats[end-1]
		if s.TotalOccupancy == 0 && s.Admissions == 0 && s.Discharges == 0 {
			end--
			continue
		}
		break
	}
	return stats[:end]
}

func dayKey(t time.Time) int64 {
	return int64(model.ToEpochDay(t))
}
