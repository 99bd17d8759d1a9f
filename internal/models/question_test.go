package models

import (
	"errors"
	"testing"
)

func option(text string, correct bool) Option {
	return Option{Text: text, IsCorrect: correct}
}

func TestQuestionValidate(t *testing.T) {
	testCases := []struct {
		name     string
		question Question
		wantErr  error
	}{
		{
			"valid question",
			Question{Content: "2+2?", Difficulty: "easy", Options: []Option{option("3", false), option("4", true)}},
			nil,
		},
		{
			"missing content",
			Question{Difficulty: "easy", Options: []Option{option("a", true), option("b", false)}},
			ErrNoContent,
		},
		{
			"single option",
			Question{Content: "?", Difficulty: "easy", Options: []Option{option("a", true)}},
			ErrTooFewOptions,
		},
		{
			"no correct option",
			Question{Content: "?", Difficulty: "easy", Options: []Option{option("a", false), option("b", false)}},
			ErrNoCorrectOption,
		},
		{
			"two correct options",
			Question{Content: "?", Difficulty: "easy", Options: []Option{option("a", true), option("b", true)}},
			ErrMultipleCorrect,
		},
		{
			"bogus difficulty",
			Question{Content: "?", Difficulty: "impossible", Options: []Option{option("a", true), option("b", false)}},
			ErrUnknownDifficulty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.question.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("expected valid question, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCorrectOptionIndex(t *testing.T) {
	q := Question{Options: []Option{option("a", false), option("b", false), option("c", true)}}
	if got := q.CorrectOptionIndex(); got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}
	broken := Question{Options: []Option{option("a", false)}}
	if got := broken.CorrectOptionIndex(); got != -1 {
		t.Errorf("expected -1 for no correct option, got %d", got)
	}
}

func TestOptionTextsNeverLeakCorrectFlag(t *testing.T) {
	q := Question{Options: []Option{option("a", false), option("b", true)}}
	texts := q.OptionTexts()
	if len(texts) != 2 || texts[0] != "a" || texts[1] != "b" {
		t.Errorf("unexpected option texts: %v", texts)
	}
}
