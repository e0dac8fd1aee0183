package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// ListTasks returns the user's tasks, newest day first. A non-empty
// date narrows the list to that exact calendar day.
func ListTasks(userID uint, date string) ([]models.Task, error) {
	q := config.DB.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var tasks []models.Task
	err := q.Order("date desc").Find(&tasks).Error
	return tasks, err
}

func CreateTask(userID uint, title, date string) (*models.Task, error) {
	task := models.Task{
		UserID: userID,
		Title:  title,
		Date:   date,
	}
	if err := config.DB.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SetTaskCompleted applies the caller-supplied flag as-is; there is no
// derived toggle logic on the server.
func SetTaskCompleted(userID, taskID uint, completed bool) error {
	var task models.Task
	err := config.DB.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		return err
	}

	task.Completed = completed
	return config.DB.Save(&task).Error
}

func DeleteTask(userID, taskID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
