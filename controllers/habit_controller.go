package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func ListHabits(c *gin.Context) {
	uid := c.GetUint("userID")

	habits, err := services.ListHabits(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, habits)
}

type CreateHabitInput struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	GoalType     string `json:"goal_type" binding:"required,oneof=daily weekly custom"`
	GoalValue    int    `json:"goal_value"`
	DurationDays int    `json:"duration_days"`
}

func CreateHabit(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := services.CreateHabit(uid, services.CreateHabitInput{
		Name:         input.Name,
		Description:  input.Description,
		Color:        input.Color,
		GoalType:     input.GoalType,
		GoalValue:    input.GoalValue,
		DurationDays: input.DurationDays,
	}, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func DeleteHabit(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return
	}

	if err := services.DeleteHabit(uid, uint(id)); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type LogStatusInput struct {
	HabitID uint   `json:"habit_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=completed missed skipped"`
}

func ListHabitLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := services.ListHabitLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func LogHabitStatus(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	log, err := services.UpsertHabitLog(uid, input.HabitID, input.Date, input.Status)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, log)
}
