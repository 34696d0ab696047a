package models

import (
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// BeverageCategory groups beverage types.
type BeverageCategory string

const (
	CategoryWater   BeverageCategory = "water"
	CategoryHot     BeverageCategory = "hot"
	CategoryCold    BeverageCategory = "cold"
	CategoryDairy   BeverageCategory = "dairy"
	CategorySports  BeverageCategory = "sports"
	CategoryAlcohol BeverageCategory = "alcohol"
	CategoryOther   BeverageCategory = "other"
)

// Caffeine is a coarse caffeine level.
type Caffeine string

const (
	CaffeineNone     Caffeine = "none"
	CaffeineLow      Caffeine = "low"
	CaffeineModerate Caffeine = "moderate"
	CaffeineHigh     Caffeine = "high"
)

// BeverageType is reference data. HydrationCoefficient lies in [-1, 1]:
// 1 is pure water, negative values mean net fluid loss.
type BeverageType struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Category             BeverageCategory `json:"category"`
	HydrationCoefficient float64          `json:"hydration_coefficient"`
	Caffeine             Caffeine         `json:"caffeine"`
	Sugary               bool             `json:"sugary"`
	DefaultAmount        int              `json:"default_amount"`
	Custom               bool             `json:"custom"`
	Description          string           `json:"description,omitempty"`
}

// BeverageLogEntry is immutable once logged. Coefficient is a snapshot so
// later edits to custom types do not rewrite history.
type BeverageLogEntry struct {
	ID                   string     `json:"id"`
	BeverageID           string     `json:"beverage_id"`
	BeverageName         string     `json:"beverage_name"`
	Amount               int        `json:"amount"`
	HydrationCoefficient float64    `json:"hydration_coefficient"`
	EffectiveHydration   float64    `json:"effective_hydration"`
	Timestamp            time.Time  `json:"timestamp"`
	Date                 timex.Date `json:"date"`
}

// BeverageLog holds entries per day in logging order.
type BeverageLog map[timex.Date][]BeverageLogEntry

type BeverageBreakdown struct {
	BeverageID      string  `json:"beverage_id"`
	BeverageName    string  `json:"beverage_name"`
	TotalAmount     int     `json:"total_amount"`
	EffectiveAmount float64 `json:"effective_amount"`
	Count           int     `json:"count"`
}

// DailyBeverageSummary is derived on read, never stored.
type DailyBeverageSummary struct {
	Date                timex.Date          `json:"date"`
	TotalConsumed       int                 `json:"total_consumed"`
	EffectiveHydration  float64             `json:"effective_hydration"`
	HydrationEfficiency float64             `json:"hydration_efficiency"`
	Breakdown           []BeverageBreakdown `json:"breakdown"`
}

type CategoryTotal struct {
	Category BeverageCategory `json:"category"`
	Amount   int              `json:"amount"`
}

type TrendDay struct {
	Date      timex.Date `json:"date"`
	Total     int        `json:"total"`
	Effective float64    `json:"effective"`
}

type MostConsumed struct {
	Beverage BeverageType `json:"beverage"`
	Count    int          `json:"count"`
}

// BeverageStats summarises the last N days of the beverage log.
type BeverageStats struct {
	MostConsumed      *MostConsumed   `json:"most_consumed,omitempty"`
	AverageEfficiency float64         `json:"average_efficiency"`
	TotalByCategory   []CategoryTotal `json:"total_by_category"`
	Trend             []TrendDay      `json:"trend"`
}
