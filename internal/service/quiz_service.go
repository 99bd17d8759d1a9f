package service

import (
	"context"
	"time"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuizService struct {
	Repo *repository.QuizRepository
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuizService) ListByCourse(ctx context.Context, courseID string) ([]models.Quiz, error) {
	return s.Repo.FindByCourse(ctx, courseID)
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if quiz.Difficulty == "" {
		quiz.Difficulty = "easy"
	}
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = models.DefaultPassingScore
	}
	quiz.Status = "active"
	now := time.Now()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	return s.Repo.Create(ctx, quiz)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	return s.Repo.Update(ctx, id, update)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
