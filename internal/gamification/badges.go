package gamification

import "eduverse-quiz-service/internal/models"

// Badge is one entry of the award catalog. Criteria is evaluated against the
// user's aggregate stats after each completed quiz; a badge already held is
// never re-granted.
type Badge struct {
	ID       string
	Name     string
	Criteria func(stats *models.UserStats) bool
}

// Catalog returns the badge catalog in award-evaluation order.
func Catalog() []Badge {
	return []Badge{
		{
			ID:   "first_quiz",
			Name: "First Steps",
			Criteria: func(s *models.UserStats) bool {
				return s.QuizzesCompleted >= 1
			},
		},
		{
			ID:   "perfect_score",
			Name: "Perfectionist",
			Criteria: func(s *models.UserStats) bool {
				return s.PerfectScores >= 1
			},
		},
		{
			ID:   "high_achiever",
			Name: "High Achiever",
			Criteria: func(s *models.UserStats) bool {
				return s.QuizzesPassed >= 5
			},
		},
		{
			ID:   "streak_5",
			Name: "On a Roll",
			Criteria: func(s *models.UserStats) bool {
				return s.BestStreak >= 5
			},
		},
		{
			ID:   "quiz_master",
			Name: "Quiz Master",
			Criteria: func(s *models.UserStats) bool {
				return s.QuizzesCompleted >= 10
			},
		},
	}
}
