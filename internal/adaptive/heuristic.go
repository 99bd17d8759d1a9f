package adaptive

// Rolling-window thresholds for the local adaptation rule.
const (
	WindowSize       = 5
	StepUpAccuracy   = 0.8
	StepDownAccuracy = 0.4
)

// Heuristic is the deterministic local adaptation rule: look at the most
// recent WindowSize answers, step up on accuracy >= StepUpAccuracy, step down
// on accuracy <= StepDownAccuracy, otherwise stay. Pure and side-effect-free.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Adapt(history []AnswerOutcome, current Difficulty) Difficulty {
	if len(history) == 0 {
		return current
	}

	window := history
	if len(window) > WindowSize {
		window = window[len(window)-WindowSize:]
	}

	correct := 0
	for _, rec := range window {
		if rec.IsCorrect {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(window))

	switch {
	case accuracy >= StepUpAccuracy:
		return current.StepUp()
	case accuracy <= StepDownAccuracy:
		return current.StepDown()
	}
	return current
}
