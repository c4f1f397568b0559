package conversation

import "content-copilot/internal/model"

// Collection route names. Post and call dialogues share the session logic
// but live in separate persisted collections.
const (
	CollectionPosts = "posts"
	CollectionCalls = "calls"
)

// OpenInput identifies the subject a dialog is being opened for.
type OpenInput struct {
	SubjectID       string
	SubjectMetadata model.SubjectMetadata
}

// OpenOutput is the session surfaced to the UI. Resumed is false when the
// persisted session was missing or the remote peer no longer recognized it.
type OpenOutput struct {
	Session model.ConversationSession
	Resumed bool
}

// SendInput is one user turn.
type SendInput struct {
	SubjectID string
	Text      string
}

// SendOutput is the session after the turn, including the assistant reply
// or the locally generated fallback.
type SendOutput struct {
	Session model.ConversationSession
}

// ListOutput holds all sessions of a collection.
type ListOutput struct {
	Sessions []model.ConversationSession `json:"sessions"`
	Count    int                         `json:"count"`
}
