package services

import (
	"math"
	"time"

	"backend/models"
)

// The progress engine is pure: every function derives its result from
// the habit/log collections passed in plus an explicit reference day.
// Nothing here touches the database or the real clock.

// DayKey formats a time as the calendar-day string used everywhere
// logs are grouped and compared.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type DayCompletion struct {
	Date       string `json:"date"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

type SeriesPoint struct {
	Date       string `json:"date"`
	Day        int    `json:"day"` // day of month, for chart axis labels
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

type HeatCell struct {
	Date  string `json:"date"`
	Value int    `json:"value"` // raw completed count that day
	Tier  int    `json:"tier"`  // 0..4 color band
}

type WeekDay struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

type WeeklyOverview struct {
	Days       []WeekDay `json:"days"`
	Completed  int       `json:"completed"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
}

func roundPct(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func completedOn(logs []models.HabitLog, date string) int {
	n := 0
	for _, l := range logs {
		if l.Date == date && l.Status == models.StatusCompleted {
			n++
		}
	}
	return n
}

// CurrentStreak walks backward from today one day at a time and counts
// days that have at least one completed log. The walk stops at the
// first day without one, so a day where everything was skipped breaks
// the streak, and the streak reads 0 until today itself is logged.
func CurrentStreak(logs []models.HabitLog, today time.Time) int {
	streak := 0
	for offset := 0; ; offset++ {
		day := DayKey(today.AddDate(0, 0, -offset))
		if completedOn(logs, day) == 0 {
			break
		}
		streak++
	}
	return streak
}

// DayCompletionFor reports completed-vs-total for one day. Total is the
// habit count, not the logged count, so unlogged habits drag the
// percentage down.
func DayCompletionFor(habits []models.Habit, logs []models.HabitLog, date string) DayCompletion {
	completed := completedOn(logs, date)
	total := len(habits)
	return DayCompletion{
		Date:       date,
		Completed:  completed,
		Total:      total,
		Percentage: roundPct(completed, total),
	}
}

// StatusForDay returns the habit's logged status on the given day, or
// "" when the day is unlogged.
func StatusForDay(habitID uint, logs []models.HabitLog, date string) string {
	for _, l := range logs {
		if l.HabitID == habitID && l.Date == date {
			return l.Status
		}
	}
	return ""
}

// WeekStrip returns the habit's last seven statuses, oldest first,
// ending at today.
func WeekStrip(habitID uint, logs []models.HabitLog, today time.Time) []string {
	strip := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		day := DayKey(today.AddDate(0, 0, -i))
		strip = append(strip, StatusForDay(habitID, logs, day))
	}
	return strip
}

// MonthlyRate is the rolling 30-day completion percentage: completed
// logs in the window over habits x 30 day-slots.
func MonthlyRate(habits []models.Habit, logs []models.HabitLog, today time.Time) int {
	cutoff := DayKey(today.AddDate(0, 0, -29))
	completed := 0
	for _, l := range logs {
		if l.Date >= cutoff && l.Status == models.StatusCompleted {
			completed++
		}
	}
	return roundPct(completed, len(habits)*30)
}

// Last30DaysSeries produces one point per day, oldest first, for the
// monthly bar chart. Each point is that single day's rate, not a
// windowed average.
func Last30DaysSeries(habits []models.Habit, logs []models.HabitLog, today time.Time) []SeriesPoint {
	series := make([]SeriesPoint, 0, 30)
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		dc := DayCompletionFor(habits, logs, DayKey(day))
		series = append(series, SeriesPoint{
			Date:       dc.Date,
			Day:        day.Day(),
			Completed:  dc.Completed,
			Total:      dc.Total,
			Percentage: dc.Percentage,
		})
	}
	return series
}

func heatTier(value int) int {
	switch {
	case value >= 4:
		return 4
	case value >= 1:
		return value
	default:
		return 0
	}
}

// HeatmapSeries covers the last 90 days, oldest first, with the raw
// completed count per day banded into five tiers (0, 1, 2, 3, >=4).
func HeatmapSeries(logs []models.HabitLog, today time.Time) []HeatCell {
	cells := make([]HeatCell, 0, 90)
	for i := 89; i >= 0; i-- {
		day := DayKey(today.AddDate(0, 0, -i))
		value := completedOn(logs, day)
		cells = append(cells, HeatCell{Date: day, Value: value, Tier: heatTier(value)})
	}
	return cells
}

// WeekOverview covers the Monday-start week containing today: a
// completion entry per day plus an aggregate summed across all habits
// and all seven days.
func WeekOverview(habits []models.Habit, logs []models.HabitLog, today time.Time) WeeklyOverview {
	// Monday of the current week; Go's Sunday is 0, same as JS.
	back := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -back)

	ov := WeeklyOverview{Days: make([]WeekDay, 0, 7)}
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		dc := DayCompletionFor(habits, logs, DayKey(day))
		ov.Days = append(ov.Days, WeekDay{
			Date:       dc.Date,
			Weekday:    day.Weekday().String(),
			Completed:  dc.Completed,
			Total:      dc.Total,
			Percentage: dc.Percentage,
		})
		ov.Completed += dc.Completed
		ov.Total += dc.Total
	}
	ov.Percentage = roundPct(ov.Completed, ov.Total)
	return ov
}
