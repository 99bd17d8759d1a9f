package gamification

import (
	"context"
	"errors"
	"testing"

	"eduverse-quiz-service/internal/models"
	"eduverse-quiz-service/internal/service"
)

type fakeAttemptWriter struct {
	attempts []*models.QuizAttempt
	err      error
}

func (f *fakeAttemptWriter) Create(_ context.Context, attempt *models.QuizAttempt) error {
	if f.err != nil {
		return f.err
	}
	f.attempts = append(f.attempts, attempt)
	return nil
}

type fakeStatsStore struct {
	stats map[string]*models.UserStats
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{stats: map[string]*models.UserStats{}}
}

func (f *fakeStatsStore) FindByUser(_ context.Context, userID string) (*models.UserStats, error) {
	if s, ok := f.stats[userID]; ok {
		cp := *s
		cp.Badges = append([]string(nil), s.Badges...)
		return &cp, nil
	}
	return &models.UserStats{UserID: userID, Badges: []string{}}, nil
}

func (f *fakeStatsStore) Upsert(_ context.Context, stats *models.UserStats) error {
	cp := *stats
	cp.Badges = append([]string(nil), stats.Badges...)
	f.stats[stats.UserID] = &cp
	return nil
}

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) error {
	p.events = append(p.events, eventType)
	return nil
}

func payload(score int, passed bool) *service.AttemptPayload {
	return &service.AttemptPayload{
		SessionID:      "session-1",
		UserID:         "user-1",
		QuizID:         "quiz-1",
		Score:          score,
		CorrectAnswers: score / 10,
		TotalQuestions: 10,
		Difficulty:     "medium",
		IsPassed:       passed,
		PassingScore:   70,
		Answers:        []models.AnswerRecord{{QuestionID: "q1", IsCorrect: true}},
	}
}

func TestOnComplete_RecordsAttempt(t *testing.T) {
	writer := &fakeAttemptWriter{}
	stats := newFakeStatsStore()
	svc := NewService(writer, stats, nil)

	if err := svc.OnComplete(context.Background(), payload(80, true)); err != nil {
		t.Fatalf("OnComplete failed: %v", err)
	}

	if len(writer.attempts) != 1 {
		t.Fatalf("expected one attempt written, got %d", len(writer.attempts))
	}
	attempt := writer.attempts[0]
	if attempt.Score != 80 || !attempt.IsPassed || attempt.Difficulty != "medium" {
		t.Errorf("attempt fields mismatch: %+v", attempt)
	}
	if len(attempt.Answers) != 1 {
		t.Errorf("expected answer history on the attempt, got %d records", len(attempt.Answers))
	}
}

func TestOnComplete_GrantsXP(t *testing.T) {
	testCases := []struct {
		name       string
		score      int
		passed     bool
		expectedXP int
	}{
		{"failed quiz earns the score only", 40, false, 40},
		{"pass earns the bonus", 80, true, 80 + PassBonusXP},
		{"perfect earns both bonuses", 100, true, 100 + PassBonusXP + PerfectBonusXP},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := newFakeStatsStore()
			svc := NewService(&fakeAttemptWriter{}, stats, nil)

			if err := svc.OnComplete(context.Background(), payload(tc.score, tc.passed)); err != nil {
				t.Fatalf("OnComplete failed: %v", err)
			}
			got := stats.stats["user-1"]
			if got.XP != tc.expectedXP {
				t.Errorf("expected %d XP, got %d", tc.expectedXP, got.XP)
			}
		})
	}
}

func TestOnComplete_StreakBookkeeping(t *testing.T) {
	stats := newFakeStatsStore()
	svc := NewService(&fakeAttemptWriter{}, stats, nil)
	ctx := context.Background()

	svc.OnComplete(ctx, payload(90, true))
	svc.OnComplete(ctx, payload(80, true))
	svc.OnComplete(ctx, payload(30, false))

	got := stats.stats["user-1"]
	if got.CurrentStreak != 0 {
		t.Errorf("a failed quiz must reset the streak, got %d", got.CurrentStreak)
	}
	if got.BestStreak != 2 {
		t.Errorf("best streak must survive the reset, got %d", got.BestStreak)
	}
	if got.QuizzesCompleted != 3 || got.QuizzesPassed != 2 {
		t.Errorf("counter mismatch: %+v", got)
	}
}

func TestOnComplete_BadgesAwardedOnce(t *testing.T) {
	stats := newFakeStatsStore()
	publisher := &recordingPublisher{}
	svc := NewService(&fakeAttemptWriter{}, stats, publisher)
	ctx := context.Background()

	svc.OnComplete(ctx, payload(100, true))
	svc.OnComplete(ctx, payload(100, true))

	got := stats.stats["user-1"]
	count := map[string]int{}
	for _, b := range got.Badges {
		count[b]++
	}
	if count["first_quiz"] != 1 {
		t.Errorf("first_quiz must be granted exactly once, got %d", count["first_quiz"])
	}
	if count["perfect_score"] != 1 {
		t.Errorf("perfect_score must be granted exactly once, got %d", count["perfect_score"])
	}

	awards := 0
	for _, e := range publisher.events {
		if e == "badge.awarded" {
			awards++
		}
	}
	if awards != 2 {
		t.Errorf("expected 2 badge.awarded events (first_quiz, perfect_score), got %d", awards)
	}
}

func TestOnComplete_ThresholdBadges(t *testing.T) {
	stats := newFakeStatsStore()
	svc := NewService(&fakeAttemptWriter{}, stats, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		svc.OnComplete(ctx, payload(90, true))
	}

	got := stats.stats["user-1"]
	for _, want := range []string{"first_quiz", "high_achiever", "streak_5", "quiz_master"} {
		if !got.HasBadge(want) {
			t.Errorf("expected badge %s after 10 passed quizzes, badges: %v", want, got.Badges)
		}
	}
	if got.HasBadge("perfect_score") {
		t.Error("perfect_score must not be granted without a 100 score")
	}
}

func TestOnComplete_AttemptWriteFailureReported(t *testing.T) {
	writer := &fakeAttemptWriter{err: errors.New("insert failed")}
	stats := newFakeStatsStore()
	svc := NewService(writer, stats, nil)

	if err := svc.OnComplete(context.Background(), payload(80, true)); err == nil {
		t.Fatal("expected the attempt write failure to be reported")
	}
	if _, ok := stats.stats["user-1"]; ok {
		t.Error("stats must not be updated when the attempt write fails")
	}
}
