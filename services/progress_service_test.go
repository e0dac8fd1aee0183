package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func completedLog(habitID uint, date string) models.HabitLog {
	return models.HabitLog{HabitID: habitID, UserID: 1, Date: date, Status: models.StatusCompleted}
}

func TestCurrentStreakEmptyLogs(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, day("2024-01-10")))
}

func TestCurrentStreakCountsConsecutiveDays(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-01-10"),
		completedLog(1, "2024-01-09"),
		completedLog(1, "2024-01-08"),
		// gap on the 7th
		completedLog(1, "2024-01-06"),
	}
	assert.Equal(t, 3, CurrentStreak(logs, day("2024-01-10")))
}

func TestCurrentStreakResetsWhenTodayUnlogged(t *testing.T) {
	// A long run ending yesterday still reads 0 until today is logged.
	logs := []models.HabitLog{
		completedLog(1, "2024-01-09"),
		completedLog(1, "2024-01-08"),
		completedLog(1, "2024-01-07"),
		completedLog(1, "2024-01-06"),
		completedLog(1, "2024-01-05"),
	}
	assert.Equal(t, 0, CurrentStreak(logs, day("2024-01-10")))
}

func TestCurrentStreakBrokenBySkippedOnlyDay(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-01-10"),
		{HabitID: 1, UserID: 1, Date: "2024-01-09", Status: models.StatusSkipped},
		completedLog(1, "2024-01-08"),
	}
	assert.Equal(t, 1, CurrentStreak(logs, day("2024-01-10")))
}

func TestDayCompletionFullDay(t *testing.T) {
	habits := []models.Habit{{UserID: 1, Name: "A"}, {UserID: 1, Name: "B"}}
	habits[0].ID = 1
	habits[1].ID = 2
	logs := []models.HabitLog{
		completedLog(1, "2024-01-01"),
		completedLog(2, "2024-01-01"),
	}

	dc := DayCompletionFor(habits, logs, "2024-01-01")
	assert.Equal(t, 2, dc.Completed)
	assert.Equal(t, 2, dc.Total)
	assert.Equal(t, 100, dc.Percentage)

	assert.Equal(t, 1, CurrentStreak(logs, day("2024-01-01")))
}

func TestDayCompletionZeroHabits(t *testing.T) {
	dc := DayCompletionFor(nil, nil, "2024-01-01")
	assert.Equal(t, 0, dc.Percentage)
	assert.Equal(t, 0, dc.Completed)
}

func TestDayCompletionRounding(t *testing.T) {
	habits := make([]models.Habit, 3)
	for i := range habits {
		habits[i].ID = uint(i + 1)
	}
	logs := []models.HabitLog{completedLog(1, "2024-01-01")}

	// 1/3 rounds to 33, 2/3 rounds to 67
	assert.Equal(t, 33, DayCompletionFor(habits, logs, "2024-01-01").Percentage)

	logs = append(logs, completedLog(2, "2024-01-01"))
	assert.Equal(t, 67, DayCompletionFor(habits, logs, "2024-01-01").Percentage)
}

func TestWeekStrip(t *testing.T) {
	logs := []models.HabitLog{
		completedLog(1, "2024-01-10"),
		{HabitID: 1, UserID: 1, Date: "2024-01-08", Status: models.StatusMissed},
		completedLog(2, "2024-01-09"), // other habit, ignored
	}

	strip := WeekStrip(1, logs, day("2024-01-10"))
	assert.Len(t, strip, 7)
	assert.Equal(t, "", strip[0])                       // 2024-01-04
	assert.Equal(t, models.StatusMissed, strip[4])      // 2024-01-08
	assert.Equal(t, "", strip[5])                       // 2024-01-09
	assert.Equal(t, models.StatusCompleted, strip[6])   // today
}

func TestMonthlyRate(t *testing.T) {
	habits := []models.Habit{{}, {}}
	habits[0].ID = 1
	habits[1].ID = 2

	logs := make([]models.HabitLog, 0, 15)
	for i := 0; i < 15; i++ {
		logs = append(logs, completedLog(1, DayKey(day("2024-01-30").AddDate(0, 0, -i))))
	}

	// 15 completed over 2 habits x 30 days
	assert.Equal(t, 25, MonthlyRate(habits, logs, day("2024-01-30")))
	assert.Equal(t, 0, MonthlyRate(nil, logs, day("2024-01-30")))
}

func TestMonthlyRateWindowIsExactlyThirtyDays(t *testing.T) {
	habits := []models.Habit{{}}
	habits[0].ID = 1

	logs := make([]models.HabitLog, 0, 31)
	for i := 0; i <= 30; i++ {
		logs = append(logs, completedLog(1, DayKey(day("2024-01-31").AddDate(0, 0, -i))))
	}

	// 31 consecutive completed days: the oldest falls outside the
	// window, so a fully consistent user reads exactly 100.
	assert.Equal(t, 100, MonthlyRate(habits, logs, day("2024-01-31")))

	// Dropping today's log leaves 30 logs, of which the oldest is
	// again outside the window: 29/30.
	assert.Equal(t, 97, MonthlyRate(habits, logs[1:], day("2024-01-31")))
}

func TestLast30DaysSeries(t *testing.T) {
	habits := []models.Habit{{}}
	habits[0].ID = 1
	logs := []models.HabitLog{completedLog(1, "2024-01-30")}

	series := Last30DaysSeries(habits, logs, day("2024-01-30"))
	assert.Len(t, series, 30)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, "2024-01-30", series[29].Date)
	assert.Equal(t, 100, series[29].Percentage)
	assert.Equal(t, 0, series[28].Percentage)
	assert.Equal(t, 30, series[29].Day)
}

func TestHeatmapSeriesTiers(t *testing.T) {
	logs := []models.HabitLog{}
	for i := uint(1); i <= 5; i++ {
		logs = append(logs, completedLog(i, "2024-01-30"))
	}
	logs = append(logs, completedLog(1, "2024-01-29"))
	logs = append(logs, completedLog(1, "2024-01-28"), completedLog(2, "2024-01-28"))

	cells := HeatmapSeries(logs, day("2024-01-30"))
	assert.Len(t, cells, 90)

	last := cells[89]
	assert.Equal(t, "2024-01-30", last.Date)
	assert.Equal(t, 5, last.Value)
	assert.Equal(t, 4, last.Tier) // >=4 caps the band

	assert.Equal(t, 1, cells[88].Tier)
	assert.Equal(t, 2, cells[87].Tier)
	assert.Equal(t, 0, cells[86].Tier)
}

func TestWeekOverviewMondayStart(t *testing.T) {
	habits := []models.Habit{{}}
	habits[0].ID = 1
	logs := []models.HabitLog{
		completedLog(1, "2024-01-08"), // Monday
		completedLog(1, "2024-01-10"), // Wednesday (today)
	}

	// 2024-01-10 is a Wednesday
	ov := WeekOverview(habits, logs, day("2024-01-10"))
	assert.Len(t, ov.Days, 7)
	assert.Equal(t, "2024-01-08", ov.Days[0].Date)
	assert.Equal(t, "Monday", ov.Days[0].Weekday)
	assert.Equal(t, "2024-01-14", ov.Days[6].Date)

	assert.Equal(t, 2, ov.Completed)
	assert.Equal(t, 7, ov.Total)
	assert.Equal(t, 29, ov.Percentage) // round(2/7*100)
}

func TestWeekOverviewOnAMonday(t *testing.T) {
	ov := WeekOverview(nil, nil, day("2024-01-08"))
	assert.Equal(t, "2024-01-08", ov.Days[0].Date)
	assert.Equal(t, 0, ov.Percentage)
}

func TestWeekOverviewOnASunday(t *testing.T) {
	ov := WeekOverview(nil, nil, day("2024-01-14"))
	assert.Equal(t, "2024-01-08", ov.Days[0].Date)
}
