package beverages

import (
	"testing"

	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/stretchr/testify/assert"
)

func entry(id string, amount int, coef float64) models.BeverageLogEntry {
	return models.BeverageLogEntry{
		BeverageID:           id,
		BeverageName:         id,
		Amount:               amount,
		HydrationCoefficient: coef,
		EffectiveHydration:   float64(amount) * coef,
	}
}

func TestSummarize(t *testing.T) {
	d := timex.NewDate(2024, 1, 3)

	tests := []struct {
		name           string
		entries        []models.BeverageLogEntry
		wantTotal      int
		wantEffective  float64
		wantEfficiency float64
	}{
		{"empty", nil, 0, 0, 100},
		{"water only", []models.BeverageLogEntry{entry("water", 500, 1)}, 500, 500, 100},
		{"coffee", []models.BeverageLogEntry{entry("coffee", 200, 0.8)}, 200, 160, 80},
		{"mixed", []models.BeverageLogEntry{entry("water", 300, 1), entry("beer", 100, -0.2)}, 400, 280, 70},
		{"net negative", []models.BeverageLogEntry{entry("wine", 300, -0.3)}, 300, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(d, tt.entries)
			assert.Equal(t, tt.wantTotal, s.TotalConsumed)
			assert.InDelta(t, tt.wantEffective, s.EffectiveHydration, 1e-9)
			assert.InDelta(t, tt.wantEfficiency, s.HydrationEfficiency, 1e-9)
			assert.GreaterOrEqual(t, s.HydrationEfficiency, 0.0)
		})
	}
}

func TestSummarize_BreakdownOrder(t *testing.T) {
	s := Summarize(timex.NewDate(2024, 1, 3), []models.BeverageLogEntry{
		entry("tea", 200, 0.95),
		entry("water", 250, 1),
		entry("tea", 100, 0.95),
	})

	assert.Equal(t, []models.BeverageBreakdown{
		{BeverageID: "tea", BeverageName: "tea", TotalAmount: 300, EffectiveAmount: 285, Count: 2},
		{BeverageID: "water", BeverageName: "water", TotalAmount: 250, EffectiveAmount: 250, Count: 1},
	}, s.Breakdown)
}

func TestHydrationRating(t *testing.T) {
	tests := []struct {
		coef float64
		want Rating
	}{
		{1, RatingExcellent},
		{0.95, RatingExcellent},
		{0.9, RatingGood},
		{0.8, RatingModerate},
		{0.6, RatingPoor},
		{0.2, RatingVeryPoor},
		{0, RatingVeryPoor},
		{-0.2, RatingDehydrating},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HydrationRating(tt.coef), "coef %g", tt.coef)
	}
}

func TestBuiltin_CoefficientsInRange(t *testing.T) {
	seen := map[string]bool{}
	for _, bt := range Builtin() {
		assert.False(t, seen[bt.ID], "duplicate id %s", bt.ID)
		seen[bt.ID] = true
		assert.GreaterOrEqual(t, bt.HydrationCoefficient, -1.0, bt.ID)
		assert.LessOrEqual(t, bt.HydrationCoefficient, 1.0, bt.ID)
		assert.Positive(t, bt.DefaultAmount, bt.ID)
	}
}
