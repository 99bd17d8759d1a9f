package adaptive

// Difficulty is one of the ordered tiers a question or session can be at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StepUp moves one tier up, saturating at hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	}
	return d
}

// StepDown moves one tier down, saturating at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	}
	return d
}

// AnswerOutcome is the slice of performance history the adapter consumes.
type AnswerOutcome struct {
	QuestionID string `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// Adapter proposes the next difficulty tier from recent performance. All
// implementations must be one-step-per-call: the returned tier is never more
// than one tier away from current.
type Adapter interface {
	Adapt(history []AnswerOutcome, current Difficulty) Difficulty
}
