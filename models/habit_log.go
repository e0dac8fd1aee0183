package models

import "gorm.io/gorm"

const (
	StatusCompleted = "completed"
	StatusMissed    = "missed"
	StatusSkipped   = "skipped"
)

// HabitLog records one habit's status for one calendar day.
// At most one row exists per (habit_id, date); writes go through
// services.UpsertHabitLog.
type HabitLog struct {
	gorm.Model
	HabitID uint   `gorm:"not null;uniqueIndex:idx_habit_log_day" json:"habit_id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Date    string `gorm:"size:10;not null;uniqueIndex:idx_habit_log_day" json:"date"` // YYYY-MM-DD
	Status  string `gorm:"size:16;not null" json:"status"`                             // "completed" | "missed" | "skipped"
}
