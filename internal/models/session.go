package models

import "time"

// AnswerRecord is one entry of a session's performance history. The history
// is append-only; CorrectAnswers and Score are always derivable from it.
type AnswerRecord struct {
	QuestionID string `bson:"question_id" json:"question_id"`
	IsCorrect  bool   `bson:"is_correct" json:"is_correct"`
}

type QuizSession struct {
	ID                   string         `bson:"_id,omitempty" json:"id"`
	QuizID               string         `bson:"quiz_id" json:"quiz_id"`
	UserID               string         `bson:"user_id" json:"user_id"`
	CurrentQuestionIndex int            `bson:"current_question_index" json:"current_question_index"`
	TotalQuestions       int            `bson:"total_questions" json:"total_questions"`
	CorrectAnswers       int            `bson:"correct_answers" json:"correct_answers"`
	Score                int            `bson:"score" json:"score"`
	CurrentDifficulty    string         `bson:"current_difficulty" json:"current_difficulty"`
	PerformanceHistory   []AnswerRecord `bson:"performance_history" json:"performance_history"`
	IsComplete           bool           `bson:"is_complete" json:"is_complete"`
	Version              int            `bson:"version" json:"version"`
	StartedAt            time.Time      `bson:"started_at" json:"started_at"`
	UpdatedAt            time.Time      `bson:"updated_at" json:"updated_at"`
}

// AskedQuestionIDs returns the ids already served in this session, used as
// the exclusion set when picking the next question.
func (s *QuizSession) AskedQuestionIDs() []string {
	ids := make([]string, 0, len(s.PerformanceHistory))
	for _, rec := range s.PerformanceHistory {
		ids = append(ids, rec.QuestionID)
	}
	return ids
}

// HasAsked reports whether a question was already served in this session.
func (s *QuizSession) HasAsked(questionID string) bool {
	for _, rec := range s.PerformanceHistory {
		if rec.QuestionID == questionID {
			return true
		}
	}
	return false
}
