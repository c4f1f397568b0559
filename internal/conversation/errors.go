package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrEmptySubject    = errors.New("subject id is empty")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrTurnInFlight    = errors.New("a turn is already in flight for this subject")
	ErrSessionNotFound = errors.New("session not found")
)
