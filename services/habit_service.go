package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrHabitNotFound = errors.New("habit not found")

type CreateHabitInput struct {
	Name         string
	Description  string
	Color        string
	GoalType     string
	GoalValue    int
	DurationDays int // only meaningful for the "custom" goal type
}

func ListHabits(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&habits).Error
	return habits, err
}

// CreateHabit starts the habit today. Custom-duration habits get an end
// date of start + duration - 1 days, mirroring how the tracker counts a
// 1-day habit as ending on its start date.
func CreateHabit(userID uint, input CreateHabitInput, today time.Time) (*models.Habit, error) {
	if input.GoalValue < 1 {
		input.GoalValue = 1
	}
	if input.Color == "" {
		input.Color = "#6366f1"
	}

	habit := models.Habit{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		GoalType:    input.GoalType,
		GoalValue:   input.GoalValue,
		StartDate:   DayKey(today),
	}

	if input.GoalType == models.GoalTypeCustom {
		if input.DurationDays < 1 {
			return nil, errors.New("duration_days is required for custom habits")
		}
		end := DayKey(today.AddDate(0, 0, input.DurationDays-1))
		habit.EndDate = &end
		habit.DurationDays = &input.DurationDays
	}

	if err := config.DB.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes the habit but leaves its logs in place; orphaned
// logs are harmless to the engine and are never purged here.
func DeleteHabit(userID, habitID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", habitID, userID).
		Delete(&models.Habit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func findOwnedHabit(userID, habitID uint) (*models.Habit, error) {
	var habit models.Habit
	err := config.DB.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}
