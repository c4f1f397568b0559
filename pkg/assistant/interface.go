package assistant

import "context"

// IAssistant defines the interface for the remote conversational AI backend.
// Implementations are safe for concurrent use.
type IAssistant interface {
	// StartConversation creates a remote conversation for a subject and
	// returns its id together with the opening assistant message.
	StartConversation(ctx context.Context, req *StartRequest) (*StartResponse, error)

	// SendMessage sends one user message to an existing remote conversation.
	// A missing or expired conversation id yields ErrConversationNotFound.
	SendMessage(ctx context.Context, conversationID, query string) (*MessageResponse, error)
}
