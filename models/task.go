package models

import "gorm.io/gorm"

// Task is an ad-hoc to-do scoped to a single calendar day,
// independent of any habit.
type Task struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	Completed bool   `gorm:"default:false" json:"completed"`
	Date      string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
}
