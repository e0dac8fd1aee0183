package models

import "gorm.io/gorm"

const (
	GoalTypeDaily  = "daily"
	GoalTypeWeekly = "weekly"
	GoalTypeCustom = "custom"
)

// Habit is created once and deleted once; there is no edit flow.
type Habit struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Color       string `gorm:"size:16" json:"color"`
	GoalType    string `gorm:"size:16;default:daily" json:"goal_type"` // "daily" | "weekly" | "custom"
	GoalValue   int    `gorm:"default:1" json:"goal_value"`

	StartDate    string  `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	EndDate      *string `gorm:"size:10" json:"end_date"`
	DurationDays *int    `json:"duration_days"` // only set when goal_type is "custom"
}
