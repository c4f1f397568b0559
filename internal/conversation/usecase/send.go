package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"content-copilot/internal/conversation"
	"content-copilot/internal/model"
)

// FallbackReply is appended in place of the assistant message when the
// remote peer fails mid-turn, so the dialog stays usable and the user's
// message is not lost.
const FallbackReply = "Sorry, I ran into a problem answering that. Please try again in a moment."

// Send performs one conversational turn: append the user message, ask the
// remote peer for a reply, and append either the reply or a fallback. A
// turn failure never surfaces as an error; the transcript carries the
// outcome instead.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input conversation.SendInput) (conversation.SendOutput, error) {
	if input.SubjectID == "" {
		return conversation.SendOutput{}, conversation.ErrEmptySubject
	}
	if strings.TrimSpace(input.Text) == "" {
		return conversation.SendOutput{}, conversation.ErrEmptyMessage
	}

	if !uc.gate.tryLock(input.SubjectID) {
		return conversation.SendOutput{}, conversation.ErrTurnInFlight
	}
	defer uc.gate.unlock(input.SubjectID)

	sess, ok := uc.store.Get(input.SubjectID)
	if !ok {
		return conversation.SendOutput{}, conversation.ErrSessionNotFound
	}

	sess.Transcript = append(sess.Transcript, model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   input.Text,
		Timestamp: time.Now(),
	})

	res, err := uc.remote.SendMessage(ctx, sess.RemoteConversationID, input.Text)
	if err != nil {
		uc.l.Warnf(ctx, "send: remote reply failed for subject %s, appending fallback: %v", input.SubjectID, err)
		sess.Transcript = append(sess.Transcript, model.Message{
			ID:        uuid.NewString(),
			Role:      model.RoleAssistant,
			Content:   FallbackReply,
			Timestamp: time.Now(),
		})
	} else {
		sess.Transcript = append(sess.Transcript, model.Message{
			ID:        uuid.NewString(),
			Role:      model.RoleAssistant,
			Content:   res.Answer,
			Timestamp: time.Now(),
		})
		if res.Stage != "" {
			sess.Stage = res.Stage
		}
	}

	// Upsert on both paths: the fallback is durably part of the transcript.
	stored := uc.store.Upsert(sess)
	return conversation.SendOutput{Session: stored}, nil
}

// Busy reports whether a turn is currently in flight for the subject.
func (uc *implUseCase) Busy(subjectID string) bool {
	return uc.gate.busy(subjectID)
}
