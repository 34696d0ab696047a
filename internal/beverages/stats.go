package beverages

import (
	"slices"

	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// ComputeStats aggregates log days in [today-days+1, today]. Types that are
// no longer in the catalog count under CategoryOther.
func ComputeStats(l models.BeverageLog, catalog []models.BeverageType, today timex.Date, days int) models.BeverageStats {
	from := today.AddDays(-(days - 1))

	var dates []timex.Date
	for d := range l {
		if !d.Before(from) && !d.After(today) {
			dates = append(dates, d)
		}
	}
	slices.SortFunc(dates, func(a, b timex.Date) int { return a.Sub(b) })

	stats := models.BeverageStats{
		TotalByCategory: []models.CategoryTotal{},
		Trend:           make([]models.TrendDay, 0, len(dates)),
	}

	counts := make(map[string]int)
	var order []string
	catIndex := make(map[models.BeverageCategory]int)
	var effSum float64

	for _, d := range dates {
		sum := Summarize(d, l[d])
		effSum += sum.HydrationEfficiency
		stats.Trend = append(stats.Trend, models.TrendDay{
			Date:      d,
			Total:     sum.TotalConsumed,
			Effective: sum.EffectiveHydration,
		})

		for _, e := range l[d] {
			if _, ok := counts[e.BeverageID]; !ok {
				order = append(order, e.BeverageID)
			}
			counts[e.BeverageID]++

			cat := models.CategoryOther
			if t, ok := findType(catalog, e.BeverageID); ok {
				cat = t.Category
			}
			i, ok := catIndex[cat]
			if !ok {
				i = len(stats.TotalByCategory)
				catIndex[cat] = i
				stats.TotalByCategory = append(stats.TotalByCategory, models.CategoryTotal{Category: cat})
			}
			stats.TotalByCategory[i].Amount += e.Amount
		}
	}

	if len(dates) > 0 {
		stats.AverageEfficiency = effSum / float64(len(dates))
	}

	// ties go to the beverage logged first
	var best string
	for _, id := range order {
		if counts[id] > counts[best] {
			best = id
		}
	}
	if best != "" {
		bt, ok := findType(catalog, best)
		if !ok {
			bt = models.BeverageType{ID: best, Name: best, Category: models.CategoryOther}
			for _, d := range dates {
				if i := slices.IndexFunc(l[d], func(e models.BeverageLogEntry) bool { return e.BeverageID == best }); i >= 0 {
					bt.Name = l[d][i].BeverageName
					break
				}
			}
		}
		stats.MostConsumed = &models.MostConsumed{Beverage: bt, Count: counts[best]}
	}

	return stats
}
