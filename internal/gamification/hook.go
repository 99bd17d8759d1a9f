package gamification

import (
	"context"
	"fmt"
	"log"
	"time"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/service"
)

// XP rewards per completed quiz: the score itself plus flat bonuses.
const (
	PassBonusXP    = 25
	PerfectBonusXP = 50
)

// AttemptWriter persists permanent attempt records.
type AttemptWriter interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) error
}

// StatsStore reads and writes per-user gamification aggregates.
type StatsStore interface {
	FindByUser(ctx context.Context, userID string) (*models.UserStats, error)
	Upsert(ctx context.Context, stats *models.UserStats) error
}

// Publisher emits gamification events. May be backed by the amqp publisher
// or absent entirely.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// Service is the completion hook the quiz engine calls when a session
// terminates: it writes the permanent attempt, grants XP, maintains streaks
// and evaluates badge criteria.
type Service struct {
	Attempts  AttemptWriter
	Stats     StatsStore
	publisher Publisher
}

func NewService(attempts AttemptWriter, stats StatsStore, publisher Publisher) *Service {
	return &Service{Attempts: attempts, Stats: stats, publisher: publisher}
}

// OnComplete implements service.CompletionHook. The attempt write is the one
// step whose failure is reported back (the engine logs and swallows it);
// stats and badge bookkeeping are best-effort on top.
func (s *Service) OnComplete(ctx context.Context, payload *service.AttemptPayload) error {
	attempt := &models.QuizAttempt{
		SessionID:        payload.SessionID,
		UserID:           payload.UserID,
		QuizID:           payload.QuizID,
		Score:            payload.Score,
		CorrectAnswers:   payload.CorrectAnswers,
		TotalQuestions:   payload.TotalQuestions,
		Difficulty:       payload.Difficulty,
		TimeSpentSeconds: payload.TimeSpentSeconds,
		IsPassed:         payload.IsPassed,
		Answers:          payload.Answers,
		CompletedAt:      time.Now(),
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	s.publish("quiz.attempt.recorded", attempt)

	stats, err := s.Stats.FindByUser(ctx, payload.UserID)
	if err != nil {
		log.Printf("failed to load stats for user %s: %v", payload.UserID, err)
		return nil
	}

	s.applyAttempt(stats, payload)
	awarded := s.evaluateBadges(stats)

	if err := s.Stats.Upsert(ctx, stats); err != nil {
		log.Printf("failed to save stats for user %s: %v", payload.UserID, err)
		return nil
	}

	for _, badge := range awarded {
		s.publish("badge.awarded", map[string]interface{}{
			"user_id":  payload.UserID,
			"badge_id": badge.ID,
			"name":     badge.Name,
		})
	}
	return nil
}

// applyAttempt folds one completed quiz into the aggregate: XP proportional
// to score plus pass/perfect bonuses, counters and the pass streak.
func (s *Service) applyAttempt(stats *models.UserStats, payload *service.AttemptPayload) {
	xp := payload.Score
	if payload.IsPassed {
		xp += PassBonusXP
	}
	perfect := payload.Score == 100
	if perfect {
		xp += PerfectBonusXP
	}

	stats.XP += xp
	stats.QuizzesCompleted++
	if payload.IsPassed {
		stats.QuizzesPassed++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.BestStreak {
			stats.BestStreak = stats.CurrentStreak
		}
	} else {
		stats.CurrentStreak = 0
	}
	if perfect {
		stats.PerfectScores++
	}
	stats.UpdatedAt = time.Now()
}

// evaluateBadges grants every catalog badge whose criteria now holds and the
// user does not hold yet, returning the newly awarded ones.
func (s *Service) evaluateBadges(stats *models.UserStats) []Badge {
	var awarded []Badge
	for _, badge := range Catalog() {
		if stats.HasBadge(badge.ID) {
			continue
		}
		if badge.Criteria(stats) {
			stats.Badges = append(stats.Badges, badge.ID)
			awarded = append(awarded, badge)
		}
	}
	return awarded
}

// GetStats exposes the aggregate for the stats endpoint.
func (s *Service) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return s.Stats.FindByUser(ctx, userID)
}

func (s *Service) publish(eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, payload); err != nil {
		log.Printf("failed to publish %s event: %v", eventType, err)
	}
}
