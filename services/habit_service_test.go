package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabitDefaults(t *testing.T) {
	setupTestDB(t)

	habit, err := CreateHabit(1, CreateHabitInput{Name: "Read", GoalType: models.GoalTypeDaily}, day("2024-01-05"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", habit.StartDate)
	assert.Equal(t, 1, habit.GoalValue)
	assert.Equal(t, "#6366f1", habit.Color)
	assert.Nil(t, habit.EndDate)
	assert.Nil(t, habit.DurationDays)
}

func TestCreateCustomHabitEndDate(t *testing.T) {
	setupTestDB(t)

	habit, err := CreateHabit(1, CreateHabitInput{
		Name:         "Exam prep",
		GoalType:     models.GoalTypeCustom,
		DurationDays: 14,
	}, day("2024-01-05"))
	require.NoError(t, err)
	require.NotNil(t, habit.EndDate)
	assert.Equal(t, "2024-01-18", *habit.EndDate) // start counts as day one
	require.NotNil(t, habit.DurationDays)
	assert.Equal(t, 14, *habit.DurationDays)

	_, err = CreateHabit(1, CreateHabitInput{Name: "Bad", GoalType: models.GoalTypeCustom}, day("2024-01-05"))
	assert.Error(t, err)
}

func TestDeleteHabitLeavesLogsOrphaned(t *testing.T) {
	setupTestDB(t)
	habit := mustCreateHabit(t, 1, "Exercise")

	_, err := UpsertHabitLog(1, habit.ID, "2024-01-01", models.StatusCompleted)
	require.NoError(t, err)

	require.NoError(t, DeleteHabit(1, habit.ID))

	habits, err := ListHabits(1)
	require.NoError(t, err)
	assert.Empty(t, habits)

	// Logs are intentionally not purged with the habit.
	var count int64
	require.NoError(t, config.DB.Model(&models.HabitLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteHabitScopedToOwner(t *testing.T) {
	setupTestDB(t)
	habit := mustCreateHabit(t, 1, "Exercise")

	assert.ErrorIs(t, DeleteHabit(2, habit.ID), ErrHabitNotFound)

	habits, err := ListHabits(1)
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}
