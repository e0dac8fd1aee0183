package services

import (
	"backend/config"
	"backend/models"
)

func ListHabitLogs(userID uint) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&logs).Error
	return logs, err
}

// UpsertHabitLog writes the habit's status for one day. A second write
// for the same (habit, date) overwrites the first row's status instead
// of creating a duplicate, which is the only guard against rapid
// double-logging.
func UpsertHabitLog(userID, habitID uint, date, status string) (*models.HabitLog, error) {
	if _, err := findOwnedHabit(userID, habitID); err != nil {
		return nil, err
	}

	log := models.HabitLog{
		HabitID: habitID,
		UserID:  userID,
		Date:    date,
		Status:  status,
	}

	err := config.DB.
		Where("habit_id = ? AND date = ?", habitID, date).
		Assign(models.HabitLog{Status: status}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}
