package entities

import "time"

// UserSettings stores user-specific configuration and preferences for learning.
type UserSettings struct {
	UserID           int64
	RemindersEnabled bool // whether daily reminders are sent
	ReminderHourUTC  int  // hour of day (UTC) for the reminder
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:           userID,
		RemindersEnabled: true,
		ReminderHourUTC:  17,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
