package models

import "time"

// QuizAttempt is the permanent record written once per completed session.
// Immutable after creation; a user accumulates one per finished session.
type QuizAttempt struct {
	ID               string         `bson:"_id,omitempty" json:"id"`
	SessionID        string         `bson:"session_id" json:"session_id"`
	UserID           string         `bson:"user_id" json:"user_id"`
	QuizID           string         `bson:"quiz_id" json:"quiz_id"`
	Score            int            `bson:"score" json:"score"`
	CorrectAnswers   int            `bson:"correct_answers" json:"correct_answers"`
	TotalQuestions   int            `bson:"total_questions" json:"total_questions"`
	Difficulty       string         `bson:"difficulty" json:"difficulty"`
	TimeSpentSeconds int            `bson:"time_spent_seconds" json:"time_spent_seconds"`
	IsPassed         bool           `bson:"is_passed" json:"is_passed"`
	Answers          []AnswerRecord `bson:"answers" json:"answers"`
	CompletedAt      time.Time      `bson:"completed_at" json:"completed_at"`
}
