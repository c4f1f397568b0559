package assistant

// StartRequest is the request body for creating a remote conversation.
type StartRequest struct {
	SubjectID string            `json:"subject_id"`
	Inputs    map[string]string `json:"inputs,omitempty"`
}

// StartResponse is the backend's answer to a conversation creation.
type StartResponse struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// messageRequest is the request body for one turn.
type messageRequest struct {
	Query string `json:"query"`
}

// MessageResponse is the backend's answer to one turn. Stage is the
// dialogue progress label and may be empty.
type MessageResponse struct {
	Answer string `json:"answer"`
	Stage  string `json:"stage,omitempty"`
}

// errorResponse is the backend's error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
