package usecase

import "strings"

// ValidationError is a form rejected before any backend call. Message is the
// compact text shown to the user; Messages keeps every issue.
type ValidationError struct {
	Title    string
	Message  string
	Messages []string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

const maxShownIssues = 4

func newValidationError(title string, messages []string) *ValidationError {
	shown := messages
	if len(shown) > maxShownIssues {
		shown = shown[:maxShownIssues]
	}
	msg := strings.Join(shown, " ")
	if len(messages) > maxShownIssues {
		msg += " …"
	}
	return &ValidationError{Title: title, Message: msg, Messages: messages}
}
