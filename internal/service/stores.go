package service

import (
	"context"

	"eduverse-quiz-service/internal/models"
)

// SessionStore persists mutable quiz sessions. UpdateVersioned must be a
// compare-and-swap on the version the caller read, so concurrent submits
// against one session cannot interleave.
type SessionStore interface {
	Create(ctx context.Context, session *models.QuizSession) error
	FindByID(ctx context.Context, id string) (*models.QuizSession, error)
	UpdateVersioned(ctx context.Context, session *models.QuizSession) (bool, error)
	Delete(ctx context.Context, id string) error
}

// QuestionSource is read-only access to the course-scoped question pool.
type QuestionSource interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindFirstByCourse(ctx context.Context, courseID string) (*models.Question, error)
	FindByDifficultyExcluding(ctx context.Context, courseID, difficulty string, excludeIDs []string) (*models.Question, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

// QuizSource resolves quiz definitions.
type QuizSource interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

// AttemptPayload is what the engine hands to the completion hook when a
// session terminates.
type AttemptPayload struct {
	SessionID        string                `json:"session_id"`
	UserID           string                `json:"user_id"`
	QuizID           string                `json:"quiz_id"`
	Score            int                   `json:"score"`
	CorrectAnswers   int                   `json:"correct_answers"`
	TotalQuestions   int                   `json:"total_questions"`
	Difficulty       string                `json:"difficulty"`
	TimeSpentSeconds int                   `json:"time_spent_seconds"`
	IsPassed         bool                  `json:"is_passed"`
	PassingScore     int                   `json:"passing_score"`
	Answers          []models.AnswerRecord `json:"answers"`
}

// CompletionHook records the permanent attempt and runs gamification side
// effects. Called exactly once per session, synchronously, when the session
// terminates. Hook failures are logged by the engine and never surfaced to
// the caller.
type CompletionHook interface {
	OnComplete(ctx context.Context, payload *AttemptPayload) error
}
