package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func loadCollections(c *gin.Context) ([]models.Habit, []models.HabitLog, bool) {
	uid := c.GetUint("userID")

	habits, err := services.ListHabits(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	logs, err := services.ListHabitLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return habits, logs, true
}

// GetProgressSummary backs the dashboard KPI cards: today's
// completion, the current streak, the rolling 30-day rate and the
// habit count.
func GetProgressSummary(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}

	now := time.Now()
	today := services.DayCompletionFor(habits, logs, services.DayKey(now))

	c.JSON(http.StatusOK, gin.H{
		"today":        today,
		"streak":       services.CurrentStreak(logs, now),
		"monthly_rate": services.MonthlyRate(habits, logs, now),
		"total_habits": len(habits),
	})
}

// GetDailyProgress backs the daily focus view: one day's completion,
// each habit's status for that day and the day's tasks.
func GetDailyProgress(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = services.DayKey(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	type habitStatus struct {
		Habit  models.Habit `json:"habit"`
		Status string       `json:"status"`
	}
	statuses := make([]habitStatus, 0, len(habits))
	for _, h := range habits {
		statuses = append(statuses, habitStatus{
			Habit:  h,
			Status: services.StatusForDay(h.ID, logs, date),
		})
	}

	tasks, err := services.ListTasks(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"completion": services.DayCompletionFor(habits, logs, date),
		"habits":     statuses,
		"tasks":      tasks,
	})
}

func GetWeeklyProgress(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.WeekOverview(habits, logs, time.Now()))
}

func GetMonthlyProgress(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": services.Last30DaysSeries(habits, logs, time.Now())})
}

func GetHeatmap(c *gin.Context) {
	_, logs, ok := loadCollections(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"cells": services.HeatmapSeries(logs, time.Now())})
}

// GetHabitStrips backs the per-habit seven-day status strips on the
// habit list.
func GetHabitStrips(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}

	now := time.Now()
	type strip struct {
		HabitID uint     `json:"habit_id"`
		Week    []string `json:"week"`
	}
	strips := make([]strip, 0, len(habits))
	for _, h := range habits {
		strips = append(strips, strip{
			HabitID: h.ID,
			Week:    services.WeekStrip(h.ID, logs, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{"strips": strips})
}

func GetBadges(c *gin.Context) {
	habits, logs, ok := loadCollections(c)
	if !ok {
		return
	}

	badges := services.EvaluateBadges(habits, logs, time.Now())
	unlocked := 0
	for _, b := range badges {
		if b.Unlocked {
			unlocked++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"badges":   badges,
		"unlocked": unlocked,
		"total":    len(badges),
	})
}
