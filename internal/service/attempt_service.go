package service

import (
	"context"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/repository"
)

type AttemptService struct {
	Repo *repository.AttemptRepository
}

func NewAttemptService(repo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{Repo: repo}
}

func (s *AttemptService) GetAttemptsByUser(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *AttemptService) GetAttemptsByQuiz(ctx context.Context, quizID string) ([]models.QuizAttempt, error) {
	return s.Repo.FindByQuiz(ctx, quizID)
}

func (s *AttemptService) GetAttemptBySession(ctx context.Context, sessionID string) (*models.QuizAttempt, error) {
	return s.Repo.FindBySession(ctx, sessionID)
}
