package models

import "time"

const DefaultPassingScore = 70

type Quiz struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	CourseID         string    `bson:"course_id" json:"course_id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	Difficulty       string    `bson:"difficulty" json:"difficulty"`
	TimeLimitMinutes int       `bson:"time_limit_minutes,omitempty" json:"time_limit_minutes,omitempty"`
	PassingScore     int       `bson:"passing_score" json:"passing_score"`
	IsAdaptive       bool      `bson:"is_adaptive" json:"is_adaptive"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// BaseDifficulty is the tier a fresh session starts at.
func (q *Quiz) BaseDifficulty() string {
	if q.Difficulty == "" {
		return "easy"
	}
	return q.Difficulty
}

func (q *Quiz) EffectivePassingScore() int {
	if q.PassingScore <= 0 {
		return DefaultPassingScore
	}
	return q.PassingScore
}
