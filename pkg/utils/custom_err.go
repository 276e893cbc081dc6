package utils

import "errors"

var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrSessionNotFound       = errors.New("assessment session not found")
	ErrControlNotFound       = errors.New("control not found")

	ErrSessionNotActive = errors.New("assessment session is not active")
	ErrQuestionMismatch = errors.New("question does not belong to this questionnaire")
	ErrDependencyNotMet = errors.New("question dependencies not met")

	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidPage   = errors.New("invalid page parameter")
	ErrDatabaseError = errors.New("database error")
)
