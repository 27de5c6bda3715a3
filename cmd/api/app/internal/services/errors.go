package services

import "fmt"

// ValidationError marks malformed client input. Never retried; the caller
// must fix the payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SprintNotFoundError marks a lookup of a sprint that does not exist.
type SprintNotFoundError struct {
	Message string
}

func NewSprintNotFoundError(code string) *SprintNotFoundError {
	return &SprintNotFoundError{Message: fmt.Sprintf("Sprint with code %s not found", code)}
}

func (e *SprintNotFoundError) Error() string {
	if e.Message == "" {
		return "Sprint not found"
	}
	return e.Message
}

// TemplateNotFoundError covers both a missing template row and an empty
// template set (nothing to congratulate with until an operator seeds one).
type TemplateNotFoundError struct {
	Message string
}

func (e *TemplateNotFoundError) Error() string {
	if e.Message == "" {
		return "Template not found"
	}
	return e.Message
}

// MessageNotSentError wraps any chat delivery failure. The orchestration
// stops before persistence, so no record exists for it.
type MessageNotSentError struct {
	Err error
}

func (e *MessageNotSentError) Error() string {
	return "Failed to send congratulatory message in discord: " + e.Err.Error()
}

func (e *MessageNotSentError) Unwrap() error {
	return e.Err
}

// MessageNotSavedError wraps a persistence failure that happened after the
// chat message already went out. The notification stands with no stored
// record; nothing compensates for it.
type MessageNotSavedError struct {
	Err error
}

func (e *MessageNotSavedError) Error() string {
	return "Failed to create congratulatory message in database: " + e.Err.Error()
}

func (e *MessageNotSavedError) Unwrap() error {
	return e.Err
}
