package service

import (
	"context"
	"time"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuestionService) ListByCourse(ctx context.Context, courseID string) ([]models.Question, error) {
	return s.Repo.FindByCourse(ctx, courseID)
}

// CreateQuestion validates at ingestion time, so malformed content (zero or
// several correct options) never reaches a running session.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	question.Status = "active"
	question.CreatedAt = time.Now()
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, question *models.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	return s.Repo.Update(ctx, id, bson.M{
		"content":     question.Content,
		"options":     question.Options,
		"difficulty":  question.Difficulty,
		"explanation": question.Explanation,
	})
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
