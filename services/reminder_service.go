package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"backend/models"
)

// Reminders fire in the evening for habits not completed today. The
// cutoff hour matches the client-side reminder dialog (9 PM) and can
// be moved with REMINDER_HOUR.
const defaultReminderHour = 21

type ReminderResult struct {
	Pending []models.Habit `json:"pending"`
	Emitted bool           `json:"emitted"`
}

func reminderHour() int {
	if v := os.Getenv("REMINDER_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return defaultReminderHour
}

// CheckIncompleteHabits finds the user's habits without a completed log
// today. Past the cutoff hour a reminder alert is emitted for them;
// before it, only the pending list is reported.
func CheckIncompleteHabits(userID uint, now time.Time) (*ReminderResult, error) {
	habits, err := ListHabits(userID)
	if err != nil {
		return nil, err
	}
	logs, err := ListHabitLogs(userID)
	if err != nil {
		return nil, err
	}

	today := DayKey(now)
	pending := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if StatusForDay(h.ID, logs, today) != models.StatusCompleted {
			pending = append(pending, h)
		}
	}

	result := &ReminderResult{Pending: pending}
	if len(pending) == 0 || now.Hour() < reminderHour() {
		return result, nil
	}

	msg := fmt.Sprintf("You have %d habit(s) left to complete today. Finish strong!", len(pending))
	if len(pending) == 1 {
		msg = fmt.Sprintf("Don't forget %q today. Finish strong!", pending[0].Name)
	}
	EmitAlert(userID, "reminder", msg)
	result.Emitted = true

	return result, nil
}
