package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AI *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{AI: ai}
}

// aiError maps the adapter error taxonomy onto HTTP: a missing API key
// and upstream failures are both 500s, but only upstream failures
// expose a detail string. Anything else is a generic 500.
func aiError(c *gin.Context, err error) {
	var upstream *services.UpstreamError
	switch {
	case errors.Is(err, services.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OPENROUTER_API_KEY is not set"})
	case errors.As(err, &upstream):
		log.Printf("OpenRouter error: %s", upstream.Detail)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenRouter API failed", "detail": upstream.Detail})
	default:
		log.Printf("AI request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

type coachRequest struct {
	Habits    []services.AIHabit    `json:"habits"`
	HabitLogs []services.AIHabitLog `json:"habitLogs"`
	Message   string                `json:"message"`
}

func (ac *AIController) Coach(c *gin.Context) {
	var req coachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := ac.AI.Coach(req.Habits, req.Message)
	if err != nil {
		aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type predictRequest struct {
	Habits    []services.AIHabit    `json:"habits"`
	HabitLogs []services.AIHabitLog `json:"habitLogs"`
}

func (ac *AIController) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	predictions, err := ac.AI.Predict(req.Habits, req.HabitLogs)
	if err != nil {
		aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}

type recommendRequest struct {
	Goal string `json:"goal"`
}

func (ac *AIController) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if strings.TrimSpace(req.Goal) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Goal is required"})
		return
	}

	habits, err := ac.AI.Recommend(req.Goal)
	if err != nil {
		aiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}
