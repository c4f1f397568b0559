package usecase

import (
	"context"

	"content-copilot/internal/conversation"
	"content-copilot/internal/model"
)

// List returns all sessions in the collection, most recently updated first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (conversation.ListOutput, error) {
	sessions := uc.store.List()
	return conversation.ListOutput{
		Sessions: sessions,
		Count:    len(sessions),
	}, nil
}

// Delete removes the subject's session.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, subjectID string) error {
	if subjectID == "" {
		return conversation.ErrEmptySubject
	}
	if _, ok := uc.store.Get(subjectID); !ok {
		return conversation.ErrSessionNotFound
	}

	uc.store.Delete(subjectID)
	uc.l.Infof(ctx, "deleted session for subject %s", subjectID)
	return nil
}

// Clear removes every session in the collection.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) error {
	uc.store.Clear()
	uc.l.Info(ctx, "cleared all sessions in collection")
	return nil
}
