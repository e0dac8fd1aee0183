package services

import (
	"fmt"
	"time"

	"backend/models"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Progress    string `json:"progress"`
}

// perfectWeek checks only the dates inside the trailing seven days that
// actually have logs: every such day must have as many completed logs
// as there are habits. Days with no logs at all are not counted against
// the user, so the badge can unlock with fewer than seven logged days.
// That looseness is intentional; do not tighten it here.
func perfectWeek(habits []models.Habit, logs []models.HabitLog, today time.Time) bool {
	if len(habits) == 0 {
		return false
	}

	cutoff := DayKey(today.AddDate(0, 0, -6))
	byDate := make(map[string]int)
	loggedDates := make(map[string]bool)
	for _, l := range logs {
		if l.Date < cutoff {
			continue
		}
		loggedDates[l.Date] = true
		if l.Status == models.StatusCompleted {
			byDate[l.Date]++
		}
	}

	for date := range loggedDates {
		if byDate[date] != len(habits) {
			return false
		}
	}
	return true
}

func monthlyConsistency(habits []models.Habit, logs []models.HabitLog, today time.Time) (bool, int) {
	rate := MonthlyRate(habits, logs, today)
	return len(habits) > 0 && rate >= 90, rate
}

// EvaluateBadges runs the fixed badge predicates over the collections
// and reports each badge's state with a human-readable progress hint.
func EvaluateBadges(habits []models.Habit, logs []models.HabitLog, today time.Time) []Badge {
	hasHabit := len(habits) > 0
	hasCompletion := false
	for _, l := range logs {
		if l.Status == models.StatusCompleted {
			hasCompletion = true
			break
		}
	}

	streak := CurrentStreak(logs, today)
	hasPerfectWeek := perfectWeek(habits, logs, today)
	hasMonthly, monthlyRate := monthlyConsistency(habits, logs, today)
	collector := len(habits) >= 5

	progress := func(unlocked bool, hint string) string {
		if unlocked {
			return "Unlocked!"
		}
		return hint
	}

	return []Badge{
		{
			ID:          "first-habit",
			Name:        "First Steps",
			Description: "Create your first habit",
			Unlocked:    hasHabit,
			Progress:    progress(hasHabit, "Create a habit to start"),
		},
		{
			ID:          "first-completion",
			Name:        "Getting Started",
			Description: "Complete your first habit",
			Unlocked:    hasCompletion,
			Progress:    progress(hasCompletion, "Complete any habit once"),
		},
		{
			ID:          "3-day-streak",
			Name:        "3-Day Streak",
			Description: "Achieve a 3-day streak",
			Unlocked:    streak >= 3,
			Progress:    progress(streak >= 3, fmt.Sprintf("%d/3 days", streak)),
		},
		{
			ID:          "7-day-streak",
			Name:        "Week Warrior",
			Description: "Achieve a 7-day streak",
			Unlocked:    streak >= 7,
			Progress:    progress(streak >= 7, fmt.Sprintf("%d/7 days", streak)),
		},
		{
			ID:          "perfect-week",
			Name:        "Perfect Week",
			Description: "Complete 100% of habits for a full week",
			Unlocked:    hasPerfectWeek,
			Progress:    progress(hasPerfectWeek, "Complete all habits for 7 days"),
		},
		{
			ID:          "habit-collector",
			Name:        "Habit Collector",
			Description: "Create 5 or more habits",
			Unlocked:    collector,
			Progress:    progress(collector, fmt.Sprintf("%d/5 habits", len(habits))),
		},
		{
			ID:          "monthly-master",
			Name:        "Monthly Master",
			Description: "Keep a 90% completion rate over 30 days",
			Unlocked:    hasMonthly,
			Progress:    progress(hasMonthly, fmt.Sprintf("%d%%/90%%", monthlyRate)),
		},
	}
}
