package handlers

import (
	"context"
	"net/http"

	"eduverse-quiz-service/internal/gamification"
	"eduverse-quiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Attempts     *service.AttemptService
	Gamification *gamification.Service
}

func NewAttemptHandler(attempts *service.AttemptService, g *gamification.Service) *AttemptHandler {
	return &AttemptHandler{Attempts: attempts, Gamification: g}
}

func (h *AttemptHandler) GetAttemptsByUser(c *gin.Context) {
	userID := c.Param("id")
	attempts, err := h.Attempts.GetAttemptsByUser(context.Background(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

func (h *AttemptHandler) GetAttemptsByQuiz(c *gin.Context) {
	quizID := c.Param("id")
	attempts, err := h.Attempts.GetAttemptsByQuiz(context.Background(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetUserStats returns the gamification aggregate: XP, streaks and badges.
func (h *AttemptHandler) GetUserStats(c *gin.Context) {
	userID := c.Param("id")
	stats, err := h.Gamification.GetStats(context.Background(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
