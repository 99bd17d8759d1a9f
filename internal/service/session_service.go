package service

import (
	"context"
	"log"
	"math"
	"time"

	"eduverse-quiz-service/internal/adaptive"
	"eduverse-quiz-service/internal/models"
)

// SessionService owns the quiz session state machine: starting a session,
// grading a submitted answer, adapting difficulty, advancing or terminating
// the session, and handing completed sessions to the gamification hook.
type SessionService struct {
	Sessions  SessionStore
	Quizzes   QuizSource
	Questions QuestionSource
	adapter   adaptive.Adapter
	hook      CompletionHook
}

func NewSessionService(
	sessions SessionStore,
	quizzes QuizSource,
	questions QuestionSource,
	adapter adaptive.Adapter,
	hook CompletionHook,
) *SessionService {
	if adapter == nil {
		adapter = adaptive.NewHeuristic()
	}
	return &SessionService{
		Sessions:  sessions,
		Quizzes:   quizzes,
		Questions: questions,
		adapter:   adapter,
		hook:      hook,
	}
}

// QuestionView is a question as shown to the learner: display texts only,
// never the correct flags.
type QuestionView struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

type StartResult struct {
	SessionID        string       `json:"session_id"`
	Question         QuestionView `json:"question"`
	QuestionNumber   int          `json:"question_number"`
	TotalQuestions   int          `json:"total_questions"`
	TimeLimitMinutes int          `json:"time_limit_minutes,omitempty"`
}

type AnswerResult struct {
	IsCorrect          bool   `json:"is_correct"`
	Explanation        string `json:"explanation,omitempty"`
	CorrectOptionIndex int    `json:"correct_option_index"`
	Score              int    `json:"score"`
	IsComplete         bool   `json:"is_complete"`
	TotalQuestions     int    `json:"total_questions"`

	// Set while the session continues.
	NextQuestion   *QuestionView `json:"next_question,omitempty"`
	QuestionNumber int           `json:"question_number,omitempty"`

	// Set once the session terminates.
	FinalScore     int  `json:"final_score,omitempty"`
	CorrectAnswers int  `json:"correct_answers,omitempty"`
	IsPassed       bool `json:"is_passed,omitempty"`
	PassingScore   int  `json:"passing_score,omitempty"`
}

func questionView(q *models.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Content:    q.Content,
		Options:    q.OptionTexts(),
		Difficulty: q.Difficulty,
	}
}

// StartSession creates a fresh session for the quiz and serves the first
// question of the course pool. TotalQuestions snapshots the pool size at
// this instant; later pool changes do not affect the session.
func (s *SessionService) StartSession(ctx context.Context, quizID, userID string) (*StartResult, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	poolSize, err := s.Questions.CountByCourse(ctx, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if poolSize == 0 {
		return nil, ErrEmptyQuiz
	}

	first, err := s.Questions.FindFirstByCourse(ctx, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, ErrEmptyQuiz
	}

	now := time.Now()
	session := &models.QuizSession{
		QuizID:             quizID,
		UserID:             userID,
		TotalQuestions:     int(poolSize),
		CurrentDifficulty:  quiz.BaseDifficulty(),
		PerformanceHistory: []models.AnswerRecord{},
		Version:            1,
		StartedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &StartResult{
		SessionID:        session.ID,
		Question:         questionView(first),
		QuestionNumber:   1,
		TotalQuestions:   session.TotalQuestions,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
	}, nil
}

// SubmitAnswer grades one answer and advances the session. The whole state
// transition is built in memory and written back with a version check, so a
// concurrent submit against the same session loses cleanly instead of
// corrupting the history.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, questionID string, selectedOption int) (*AnswerResult, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsComplete {
		return nil, ErrSessionComplete
	}
	if session.HasAsked(questionID) {
		return nil, ErrUnexpectedQuestion
	}

	quiz, err := s.Quizzes.FindByID(ctx, session.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil || question.CourseID != quiz.CourseID {
		return nil, ErrQuestionNotFound
	}

	// Out-of-range option index means no option matched: incorrect, not an
	// error.
	isCorrect := selectedOption >= 0 &&
		selectedOption < len(question.Options) &&
		question.Options[selectedOption].IsCorrect

	session.PerformanceHistory = append(session.PerformanceHistory, models.AnswerRecord{
		QuestionID: questionID,
		IsCorrect:  isCorrect,
	})
	if isCorrect {
		session.CorrectAnswers++
	}
	session.CurrentQuestionIndex++
	session.Score = int(math.Round(100 * float64(session.CorrectAnswers) / float64(session.TotalQuestions)))
	session.IsComplete = session.CurrentQuestionIndex >= session.TotalQuestions
	session.UpdatedAt = time.Now()

	var next *models.Question
	if !session.IsComplete {
		if quiz.IsAdaptive {
			session.CurrentDifficulty = string(s.adapter.Adapt(
				toOutcomes(session.PerformanceHistory),
				adaptive.Difficulty(session.CurrentDifficulty),
			))
		}
		next, err = s.Questions.FindByDifficultyExcluding(
			ctx, quiz.CourseID, session.CurrentDifficulty, session.AskedQuestionIDs(),
		)
		if err != nil {
			return nil, err
		}
		if next == nil {
			// Current tier exhausted: the session terminates early with
			// whatever has accumulated. Valid completion, not an error.
			session.IsComplete = true
		}
	}

	ok, err := s.Sessions.UpdateVersioned(ctx, session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVersionConflict
	}

	result := &AnswerResult{
		IsCorrect:          isCorrect,
		Explanation:        question.Explanation,
		CorrectOptionIndex: question.CorrectOptionIndex(),
		Score:              session.Score,
		IsComplete:         session.IsComplete,
		TotalQuestions:     session.TotalQuestions,
	}

	if session.IsComplete {
		s.finalize(ctx, session, quiz)
		result.FinalScore = session.Score
		result.CorrectAnswers = session.CorrectAnswers
		result.PassingScore = quiz.EffectivePassingScore()
		result.IsPassed = session.Score >= result.PassingScore
		return result, nil
	}

	view := questionView(next)
	result.NextQuestion = &view
	result.QuestionNumber = session.CurrentQuestionIndex + 1
	return result, nil
}

// finalize hands the completed session to the gamification hook and discards
// the session record. Both steps are best-effort: the answer result is
// already computed and must reach the caller regardless.
func (s *SessionService) finalize(ctx context.Context, session *models.QuizSession, quiz *models.Quiz) {
	passingScore := quiz.EffectivePassingScore()
	payload := &AttemptPayload{
		SessionID:        session.ID,
		UserID:           session.UserID,
		QuizID:           session.QuizID,
		Score:            session.Score,
		CorrectAnswers:   session.CorrectAnswers,
		TotalQuestions:   session.TotalQuestions,
		Difficulty:       session.CurrentDifficulty,
		TimeSpentSeconds: int(session.UpdatedAt.Sub(session.StartedAt).Seconds()),
		IsPassed:         session.Score >= passingScore,
		PassingScore:     passingScore,
		Answers:          session.PerformanceHistory,
	}

	if s.hook != nil {
		if err := s.hook.OnComplete(ctx, payload); err != nil {
			log.Printf("completion hook failed for session %s: %v", session.ID, err)
		}
	}

	if err := s.Sessions.Delete(ctx, session.ID); err != nil {
		log.Printf("failed to discard completed session %s: %v", session.ID, err)
	}
}

// GetSession exposes session progress for status endpoints.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.QuizSession, error) {
	session, err := s.Sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func toOutcomes(history []models.AnswerRecord) []adaptive.AnswerOutcome {
	outcomes := make([]adaptive.AnswerOutcome, len(history))
	for i, rec := range history {
		outcomes[i] = adaptive.AnswerOutcome{QuestionID: rec.QuestionID, IsCorrect: rec.IsCorrect}
	}
	return outcomes
}
