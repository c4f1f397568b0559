package conversation

import (
	"context"

	"content-copilot/internal/model"
)

// UseCase defines the business logic interface for the conversation domain.
type UseCase interface {
	// Open returns the session for a subject, resuming a persisted one when
	// the remote peer still recognizes it, or starting fresh otherwise.
	Open(ctx context.Context, sc model.Scope, input OpenInput) (OpenOutput, error)

	// Send performs one conversational turn against the subject's session.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	// Busy reports whether a turn is currently in flight for the subject.
	Busy(subjectID string) bool

	// List returns all sessions in the collection, most recently updated first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Delete removes the subject's session.
	Delete(ctx context.Context, sc model.Scope, subjectID string) error

	// Clear removes every session in the collection.
	Clear(ctx context.Context, sc model.Scope) error
}
