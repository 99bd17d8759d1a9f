package models

import "time"

// UserStats is the gamification aggregate the completion hook maintains:
// XP, streaks and the badge set earned so far.
type UserStats struct {
	UserID           string    `bson:"_id" json:"user_id"`
	XP               int       `bson:"xp" json:"xp"`
	QuizzesCompleted int       `bson:"quizzes_completed" json:"quizzes_completed"`
	QuizzesPassed    int       `bson:"quizzes_passed" json:"quizzes_passed"`
	PerfectScores    int       `bson:"perfect_scores" json:"perfect_scores"`
	CurrentStreak    int       `bson:"current_streak" json:"current_streak"`
	BestStreak       int       `bson:"best_streak" json:"best_streak"`
	Badges           []string  `bson:"badges" json:"badges"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// HasBadge reports whether the badge was already granted. Badge awards are
// idempotent per badge per user.
func (s *UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}
