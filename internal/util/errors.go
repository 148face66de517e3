package util

import "errors"

var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrNoQuestionsAvailable = errors.New("no questions available for this quiz mode")
	ErrGenerationFailed     = errors.New("failed to generate questions")
	ErrGenerationInFlight   = errors.New("a generation request is already in flight")
	ErrNoActiveQuiz         = errors.New("no active quiz session")
	ErrQuizFinished         = errors.New("quiz session already finished")
	ErrAnswerRequired       = errors.New("current question has not been answered")
)
