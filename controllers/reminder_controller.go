package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// CheckReminders evaluates the caller's unfinished habits for today and
// emits a reminder alert when the evening cutoff has passed.
func CheckReminders(c *gin.Context) {
	uid := c.GetUint("userID")

	result, err := services.CheckIncompleteHabits(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
