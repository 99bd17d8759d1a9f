package service

import "errors"

// Caller-visible failures. Handlers map these to HTTP statuses; anything
// else coming out of the engine is an internal error.
var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrEmptyQuiz          = errors.New("quiz has no questions")
	ErrSessionComplete    = errors.New("session is already complete")
	ErrUnexpectedQuestion = errors.New("question was already answered in this session")
	ErrVersionConflict    = errors.New("session was modified concurrently")
)
