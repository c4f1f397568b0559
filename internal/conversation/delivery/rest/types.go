package rest

import "content-copilot/internal/model"

// OpenRequest is the body for opening a dialog on a subject.
type OpenRequest struct {
	SubjectID       string                `json:"subject_id" binding:"required"`
	SubjectMetadata model.SubjectMetadata `json:"subject_metadata"`
}

// SendRequest is the body for one conversational turn.
type SendRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Text      string `json:"text"`
}

// SessionResponse is the session as rendered to the UI.
type SessionResponse struct {
	Session model.ConversationSession `json:"session"`
	Resumed *bool                     `json:"resumed,omitempty"`
	Busy    bool                      `json:"busy"`
}
