package beverages

import (
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// Summarize aggregates one day's entries.
//
// A negative effective total (more alcohol than anything else) is reported
// as 0, and efficiency is 100 when nothing was consumed.
func Summarize(date timex.Date, entries []models.BeverageLogEntry) models.DailyBeverageSummary {
	s := models.DailyBeverageSummary{Date: date, Breakdown: []models.BeverageBreakdown{}}

	index := make(map[string]int)
	var effective float64
	for _, e := range entries {
		s.TotalConsumed += e.Amount
		effective += e.EffectiveHydration

		i, ok := index[e.BeverageID]
		if !ok {
			i = len(s.Breakdown)
			index[e.BeverageID] = i
			s.Breakdown = append(s.Breakdown, models.BeverageBreakdown{
				BeverageID:   e.BeverageID,
				BeverageName: e.BeverageName,
			})
		}
		b := &s.Breakdown[i]
		b.TotalAmount += e.Amount
		b.EffectiveAmount += e.EffectiveHydration
		b.Count++
	}

	s.EffectiveHydration = max(effective, 0)
	s.HydrationEfficiency = efficiency(s.EffectiveHydration, s.TotalConsumed)
	return s
}

func efficiency(effective float64, total int) float64 {
	if total == 0 {
		return 100
	}
	return effective / float64(total) * 100
}
