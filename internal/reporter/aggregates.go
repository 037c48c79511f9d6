package reporter

import (
	"bedcensus/internal/model"
	"math"
	"time"
)

// computeAggregates implements spec.md §4.3.3.
func computeAggregates(events []*model.Event, dailyStats []model.DailyStats, start, end time.Time) (admissions, discharges, upcPatients int, avgLOS float64) {
	for _, e := range events {
		if !e.FirstSeen.Before(start) && !e.FirstSeen.After(end) {
			admissions++
		}
	}

	for _, s := range dailyStats {
		discharges += s.Discharges
	}

	upc := map[string]bool{}
	for _, e := range events {
		if e.WasEverUPC {
			upc[e.Identity] = true
		}
	}
	upcPatients = len(upc)

	var losSum, losCount int
	for _, e := range events {
		exit := e.ExitDate()
		if exit == nil {
			continue
		}
		if exit.Before(start) || exit.After(end) {
			continue
		}
		losSum += e.LOS
		losCount++
	}
	if losCount > 0 {
		avgLOS = math.Round(float64(losSum)/float64(losCount)*10) / 10
	}

	return admissions, discharges, upcPatients, avgLOS
}
