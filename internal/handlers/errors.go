package handlers

import (
	"errors"
	"net/http"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto HTTP statuses. Anything outside
// the known taxonomy is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyQuiz):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionComplete),
		errors.Is(err, service.ErrUnexpectedQuestion),
		errors.Is(err, service.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNoContent),
		errors.Is(err, models.ErrTooFewOptions),
		errors.Is(err, models.ErrNoCorrectOption),
		errors.Is(err, models.ErrMultipleCorrect),
		errors.Is(err, models.ErrUnknownDifficulty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
