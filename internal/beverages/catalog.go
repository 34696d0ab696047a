package beverages

import "github.com/dmitrijs2005/wellkeeper/internal/models"

// Built-in beverage types. Coefficients follow common hydration index
// estimates; alcohol is negative because it causes net fluid loss.
var builtin = []models.BeverageType{
	{ID: "water", Name: "Water", Category: models.CategoryWater, HydrationCoefficient: 1.0, Caffeine: models.CaffeineNone, DefaultAmount: 250, Description: "Pure hydration"},
	{ID: "sparkling_water", Name: "Sparkling Water", Category: models.CategoryWater, HydrationCoefficient: 1.0, Caffeine: models.CaffeineNone, DefaultAmount: 250},
	{ID: "coconut_water", Name: "Coconut Water", Category: models.CategoryWater, HydrationCoefficient: 1.0, Caffeine: models.CaffeineNone, DefaultAmount: 250, Description: "Natural electrolytes"},

	{ID: "green_tea", Name: "Green Tea", Category: models.CategoryHot, HydrationCoefficient: 0.95, Caffeine: models.CaffeineLow, DefaultAmount: 200},
	{ID: "black_tea", Name: "Black Tea", Category: models.CategoryHot, HydrationCoefficient: 0.90, Caffeine: models.CaffeineModerate, DefaultAmount: 200},
	{ID: "coffee", Name: "Coffee", Category: models.CategoryHot, HydrationCoefficient: 0.80, Caffeine: models.CaffeineHigh, DefaultAmount: 150},
	{ID: "herbal_tea", Name: "Herbal Tea", Category: models.CategoryHot, HydrationCoefficient: 0.98, Caffeine: models.CaffeineNone, DefaultAmount: 200},
	{ID: "hot_chocolate", Name: "Hot Chocolate", Category: models.CategoryHot, HydrationCoefficient: 0.85, Caffeine: models.CaffeineLow, Sugary: true, DefaultAmount: 200},

	{ID: "orange_juice", Name: "Orange Juice", Category: models.CategoryCold, HydrationCoefficient: 0.85, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 200},
	{ID: "apple_juice", Name: "Apple Juice", Category: models.CategoryCold, HydrationCoefficient: 0.85, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 200},
	{ID: "smoothie", Name: "Smoothie", Category: models.CategoryCold, HydrationCoefficient: 0.80, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 300},
	{ID: "lemonade", Name: "Lemonade", Category: models.CategoryCold, HydrationCoefficient: 0.85, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 250},
	{ID: "iced_tea", Name: "Iced Tea", Category: models.CategoryCold, HydrationCoefficient: 0.85, Caffeine: models.CaffeineModerate, Sugary: true, DefaultAmount: 300},
	{ID: "soda", Name: "Soda / Soft Drink", Category: models.CategoryCold, HydrationCoefficient: 0.70, Caffeine: models.CaffeineModerate, Sugary: true, DefaultAmount: 330},
	{ID: "energy_drink", Name: "Energy Drink", Category: models.CategoryCold, HydrationCoefficient: 0.60, Caffeine: models.CaffeineHigh, Sugary: true, DefaultAmount: 250},

	{ID: "milk", Name: "Milk", Category: models.CategoryDairy, HydrationCoefficient: 0.90, Caffeine: models.CaffeineNone, DefaultAmount: 200},
	{ID: "yogurt_drink", Name: "Yogurt Drink", Category: models.CategoryDairy, HydrationCoefficient: 0.85, Caffeine: models.CaffeineNone, DefaultAmount: 200},

	{ID: "sports_drink", Name: "Sports Drink", Category: models.CategorySports, HydrationCoefficient: 0.95, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 500},
	{ID: "electrolyte_water", Name: "Electrolyte Water", Category: models.CategorySports, HydrationCoefficient: 1.0, Caffeine: models.CaffeineNone, DefaultAmount: 500},

	{ID: "beer", Name: "Beer", Category: models.CategoryAlcohol, HydrationCoefficient: -0.20, Caffeine: models.CaffeineNone, DefaultAmount: 330, Description: "Net fluid loss"},
	{ID: "wine", Name: "Wine", Category: models.CategoryAlcohol, HydrationCoefficient: -0.30, Caffeine: models.CaffeineNone, DefaultAmount: 150, Description: "Net fluid loss"},
	{ID: "spirits", Name: "Spirits / Liquor", Category: models.CategoryAlcohol, HydrationCoefficient: -0.50, Caffeine: models.CaffeineNone, DefaultAmount: 45, Description: "Strong net fluid loss"},
	{ID: "cocktail", Name: "Cocktail", Category: models.CategoryAlcohol, HydrationCoefficient: -0.25, Caffeine: models.CaffeineNone, Sugary: true, DefaultAmount: 200},
}

// defaultFavorites apply until the user toggles a favourite for the first time.
var defaultFavorites = []string{"water", "coffee", "green_tea"}

// Builtin returns a copy of the built-in catalog.
func Builtin() []models.BeverageType {
	out := make([]models.BeverageType, len(builtin))
	copy(out, builtin)
	return out
}

func findType(types []models.BeverageType, id string) (models.BeverageType, bool) {
	for _, t := range types {
		if t.ID == id {
			return t, true
		}
	}
	return models.BeverageType{}, false
}

// Rating is a coarse hydration quality band of a coefficient.
type Rating string

const (
	RatingExcellent   Rating = "excellent"
	RatingGood        Rating = "good"
	RatingModerate    Rating = "moderate"
	RatingPoor        Rating = "poor"
	RatingVeryPoor    Rating = "very poor"
	RatingDehydrating Rating = "dehydrating"
)

func HydrationRating(coefficient float64) Rating {
	switch {
	case coefficient >= 0.95:
		return RatingExcellent
	case coefficient >= 0.85:
		return RatingGood
	case coefficient >= 0.70:
		return RatingModerate
	case coefficient >= 0.50:
		return RatingPoor
	case coefficient >= 0:
		return RatingVeryPoor
	default:
		return RatingDehydrating
	}
}
