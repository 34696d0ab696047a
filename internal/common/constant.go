package common

// Storage keys, one per logical collection.
const (
	KeyWaterHistory      = "water_history"
	KeyBeverageLog       = "beverage_log"
	KeyFavoriteBeverages = "favorite_beverages"
	KeyCustomBeverages   = "custom_beverages"
	KeyFocusSessions     = "focus_sessions"
	KeySleepRecords      = "sleep_records"
	KeyUserSettings      = "user_settings"
)
