package adaptive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// AdvisorClient asks an external model to suggest the next difficulty tier
// from recent answer history. It speaks the chat-completions wire format so
// it can point at any OpenAI-compatible endpoint.
type AdvisorClient struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewAdvisorClient(baseURL, apiKey, model string, timeout time.Duration) *AdvisorClient {
	return &AdvisorClient{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

const advisorSystemPrompt = "You are a quiz difficulty advisor. " +
	"Given a learner's recent answer history and the current difficulty tier, " +
	"reply with exactly one word: easy, medium or hard. " +
	"Never move more than one tier away from the current one."

// Suggest asks the advisory endpoint for a next tier. Any transport error,
// non-200 status or unusable reply is returned as an error so the caller can
// fall back to the local rule.
func (a *AdvisorClient) Suggest(history []AnswerOutcome, current Difficulty) (Difficulty, error) {
	correct := 0
	for _, rec := range history {
		if rec.IsCorrect {
			correct++
		}
	}
	userPrompt := fmt.Sprintf(
		"Current difficulty: %s. Last %d answers: %d correct, %d incorrect. Next difficulty?",
		current, len(history), correct, len(history)-correct,
	)

	request := chatCompletionRequest{
		Model: a.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: advisorSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return current, err
	}

	req, err := http.NewRequest("POST", a.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return current, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return current, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return current, fmt.Errorf("advisor returned status %d: %s", resp.StatusCode, string(raw))
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return current, err
	}
	if len(response.Choices) == 0 {
		return current, fmt.Errorf("advisor returned no choices")
	}

	suggested := Difficulty(strings.ToLower(strings.TrimSpace(response.Choices[0].Message.Content)))
	if !suggested.Valid() {
		return current, fmt.Errorf("advisor returned unusable tier %q", suggested)
	}
	return suggested, nil
}

// AdvisedAdapter wraps an AdvisorClient behind the Adapter interface with the
// local heuristic as the required fallback. The advisory call is best-effort:
// the engine's correctness never depends on it succeeding or being sane.
type AdvisedAdapter struct {
	advisor  *AdvisorClient
	fallback Adapter
}

func NewAdvisedAdapter(advisor *AdvisorClient, fallback Adapter) *AdvisedAdapter {
	if fallback == nil {
		fallback = NewHeuristic()
	}
	return &AdvisedAdapter{advisor: advisor, fallback: fallback}
}

func (a *AdvisedAdapter) Adapt(history []AnswerOutcome, current Difficulty) Difficulty {
	suggested, err := a.advisor.Suggest(history, current)
	if err != nil {
		log.Printf("difficulty advisor unavailable, using local rule: %v", err)
		return a.fallback.Adapt(history, current)
	}
	// Clamp to a one-step move so a confused advisor cannot skip tiers.
	if suggested != current && suggested != current.StepUp() && suggested != current.StepDown() {
		return a.fallback.Adapt(history, current)
	}
	return suggested
}
