package models

// Settings are user preferences stored as a single blob.
type Settings struct {
	DailyWaterGoal    int `json:"daily_water_goal"`
	ReminderStartHour int `json:"reminder_start_hour"`
	ReminderEndHour   int `json:"reminder_end_hour"`
}

// DefaultSettings are used until the user saves anything.
func DefaultSettings() Settings {
	return Settings{
		DailyWaterGoal:    2000,
		ReminderStartHour: 8,
		ReminderEndHour:   22,
	}
}
