package assistant

import "errors"

var (
	// ErrConversationNotFound indicates the backend no longer recognizes the
	// conversation id (expired or deleted server-side).
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrEmptyAnswer indicates the backend returned a well-formed but empty
	// response.
	ErrEmptyAnswer = errors.New("backend returned empty answer")
)
