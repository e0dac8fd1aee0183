package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func badgeByID(t *testing.T, badges []Badge, id string) Badge {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not found", id)
	return Badge{}
}

func unlockedIDs(badges []Badge) map[string]bool {
	ids := make(map[string]bool)
	for _, b := range badges {
		if b.Unlocked {
			ids[b.ID] = true
		}
	}
	return ids
}

func habitsN(n int) []models.Habit {
	habits := make([]models.Habit, n)
	for i := range habits {
		habits[i].ID = uint(i + 1)
		habits[i].UserID = 1
	}
	return habits
}

func TestBadgesAllLockedForFreshUser(t *testing.T) {
	badges := EvaluateBadges(nil, nil, day("2024-01-10"))
	assert.Len(t, badges, 7)
	for _, b := range badges {
		assert.False(t, b.Unlocked, "badge %s should be locked", b.ID)
		assert.NotEqual(t, "Unlocked!", b.Progress)
	}
}

func TestFirstStepsAndCollector(t *testing.T) {
	badges := EvaluateBadges(habitsN(1), nil, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "first-habit").Unlocked)
	assert.Equal(t, "Unlocked!", badgeByID(t, badges, "first-habit").Progress)
	assert.Equal(t, "1/5 habits", badgeByID(t, badges, "habit-collector").Progress)

	badges = EvaluateBadges(habitsN(5), nil, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "habit-collector").Unlocked)
}

func TestGettingStartedNeedsACompletedLog(t *testing.T) {
	logs := []models.HabitLog{{HabitID: 1, UserID: 1, Date: "2024-01-01", Status: models.StatusSkipped}}
	badges := EvaluateBadges(habitsN(1), logs, day("2024-01-10"))
	assert.False(t, badgeByID(t, badges, "first-completion").Unlocked)

	logs[0].Status = models.StatusCompleted
	badges = EvaluateBadges(habitsN(1), logs, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "first-completion").Unlocked)
}

func TestStreakBadges(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-01-10"),
		completedLog(1, "2024-01-09"),
		completedLog(1, "2024-01-08"),
	}
	badges := EvaluateBadges(habitsN(1), logs, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "3-day-streak").Unlocked)
	assert.False(t, badgeByID(t, badges, "7-day-streak").Unlocked)
	assert.Equal(t, "3/7 days", badgeByID(t, badges, "7-day-streak").Progress)
}

func TestPerfectWeekNeverUnlocksWithoutHabits(t *testing.T) {
	// Orphaned logs from a deleted habit must not unlock it either.
	logs := []models.HabitLog{completedLog(9, "2024-01-10")}
	badges := EvaluateBadges(nil, logs, day("2024-01-10"))
	assert.False(t, badgeByID(t, badges, "perfect-week").Unlocked)
}

func TestPerfectWeekChecksOnlyLoggedDays(t *testing.T) {
	// Two habits, only two days logged this week, both days 100%:
	// the badge unlocks even though five days have no logs at all.
	habits := habitsN(2)
	logs := []models.HabitLog{
		completedLog(1, "2024-01-09"),
		completedLog(2, "2024-01-09"),
		completedLog(1, "2024-01-10"),
		completedLog(2, "2024-01-10"),
	}
	badges := EvaluateBadges(habits, logs, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "perfect-week").Unlocked)

	// One missed habit on a logged day locks it.
	logs[3].Status = models.StatusMissed
	badges = EvaluateBadges(habits, logs, day("2024-01-10"))
	assert.False(t, badgeByID(t, badges, "perfect-week").Unlocked)
}

func TestPerfectWeekWindowIsTrailingSevenDays(t *testing.T) {
	habits := habitsN(2)
	logs := []models.HabitLog{
		completedLog(1, "2024-01-10"),
		completedLog(2, "2024-01-10"),
		// a lone completed log seven days back, just outside the window
		completedLog(1, "2024-01-03"),
	}
	badges := EvaluateBadges(habits, logs, day("2024-01-10"))
	assert.True(t, badgeByID(t, badges, "perfect-week").Unlocked)

	// The same lone log one day later sits on the window's oldest day
	// and locks the badge.
	logs[2].Date = "2024-01-04"
	badges = EvaluateBadges(habits, logs, day("2024-01-10"))
	assert.False(t, badgeByID(t, badges, "perfect-week").Unlocked)
}

func TestMonthlyMaster(t *testing.T) {
	habits := habitsN(1)
	logs := make([]models.HabitLog, 0, 28)
	for i := 0; i < 28; i++ {
		logs = append(logs, completedLog(1, DayKey(day("2024-01-30").AddDate(0, 0, -i))))
	}

	// 28/30 = 93%
	badges := EvaluateBadges(habits, logs, day("2024-01-30"))
	assert.True(t, badgeByID(t, badges, "monthly-master").Unlocked)

	badges = EvaluateBadges(habits, logs[:20], day("2024-01-30"))
	b := badgeByID(t, badges, "monthly-master")
	assert.False(t, b.Unlocked)
	assert.Equal(t, "67%/90%", b.Progress)
}

func TestBadgesMonotonicUnderNewCompletion(t *testing.T) {
	habits := habitsN(2)
	logs := []models.HabitLog{}
	for i := 0; i < 7; i++ {
		d := DayKey(day("2024-01-10").AddDate(0, 0, -i))
		logs = append(logs, completedLog(1, d), completedLog(2, d))
	}

	before := unlockedIDs(EvaluateBadges(habits, logs, day("2024-01-10")))
	logs = append(logs, completedLog(1, "2024-01-02"))
	after := unlockedIDs(EvaluateBadges(habits, logs, day("2024-01-10")))

	for id := range before {
		assert.True(t, after[id], "badge %s locked after adding a completed log", id)
	}
}
