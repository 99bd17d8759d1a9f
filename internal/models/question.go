package models

import (
	"errors"
	"time"
)

// Option is one selectable answer for a question. Exactly one option per
// question carries IsCorrect=true; Validate enforces that at ingestion.
type Option struct {
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"is_correct" json:"is_correct"`
}

type Question struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	CourseID    string    `bson:"course_id" json:"course_id"`
	QuizID      string    `bson:"quiz_id,omitempty" json:"quiz_id,omitempty"`
	Content     string    `bson:"content" json:"content"`
	Options     []Option  `bson:"options" json:"options"`
	Difficulty  string    `bson:"difficulty" json:"difficulty"`
	Explanation string    `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

var (
	ErrNoContent         = errors.New("question content is required")
	ErrTooFewOptions     = errors.New("question needs at least two options")
	ErrNoCorrectOption   = errors.New("question has no correct option")
	ErrMultipleCorrect   = errors.New("question has more than one correct option")
	ErrUnknownDifficulty = errors.New("unknown difficulty tier")
)

// Validate rejects malformed questions before they reach the pool. The
// engine's correctness check assumes exactly one correct option, so content
// with zero or several correct options is refused here rather than producing
// undefined grading later.
func (q *Question) Validate() error {
	if q.Content == "" {
		return ErrNoContent
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return ErrNoCorrectOption
	}
	if correct > 1 {
		return ErrMultipleCorrect
	}
	switch q.Difficulty {
	case "easy", "medium", "hard":
	default:
		return ErrUnknownDifficulty
	}
	return nil
}

// CorrectOptionIndex returns the index of the correct option, -1 if the
// question never passed validation.
func (q *Question) CorrectOptionIndex() int {
	for i, opt := range q.Options {
		if opt.IsCorrect {
			return i
		}
	}
	return -1
}

// OptionTexts returns display texts only, for responses that must not leak
// the correct flag.
func (q *Question) OptionTexts() []string {
	texts := make([]string, len(q.Options))
	for i, opt := range q.Options {
		texts[i] = opt.Text
	}
	return texts
}
