package handlers

import (
	"context"
	"net/http"

	"eduverse-quiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartSession creates a new session for a quiz and returns the first
// question.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		QuizID string `json:"quiz_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	result, err := h.Service.StartSession(context.Background(), req.QuizID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// SubmitAnswer grades one answer and returns the result plus either the next
// question or the final summary.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("id")

	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		SelectedOption *int   `json:"selected_option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Service.SubmitAnswer(context.Background(), sessionID, req.QuestionID, *req.SelectedOption)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSession returns session progress. Performance history stays internal so
// a client cannot mine it for the questions still in play.
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(context.Background(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                 session.ID,
		"quiz_id":            session.QuizID,
		"question_number":    session.CurrentQuestionIndex + 1,
		"total_questions":    session.TotalQuestions,
		"correct_answers":    session.CorrectAnswers,
		"score":              session.Score,
		"current_difficulty": session.CurrentDifficulty,
		"is_complete":        session.IsComplete,
		"started_at":         session.StartedAt,
	})
}
