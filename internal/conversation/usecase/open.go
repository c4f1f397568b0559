package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"content-copilot/internal/conversation"
	"content-copilot/internal/model"
	"content-copilot/pkg/assistant"
)

// ProbeSentinel is the reserved liveness-probe text. It is never appended to
// a transcript and never rendered; it only checks whether the remote peer
// still recognizes a conversation id.
const ProbeSentinel = "ping"

// Open resumes the subject's persisted session if the remote peer still
// acknowledges it, and starts a fresh conversation otherwise. Any ambiguity
// on the probe (expiry, timeout, malformed response) resolves toward a fresh
// start.
func (uc *implUseCase) Open(ctx context.Context, sc model.Scope, input conversation.OpenInput) (conversation.OpenOutput, error) {
	if input.SubjectID == "" {
		return conversation.OpenOutput{}, conversation.ErrEmptySubject
	}

	uc.gate.lock(input.SubjectID)
	defer uc.gate.unlock(input.SubjectID)

	local, ok := uc.store.Get(input.SubjectID)
	if !ok {
		sess, err := uc.startFresh(ctx, input)
		if err != nil {
			return conversation.OpenOutput{}, err
		}
		return conversation.OpenOutput{Session: sess, Resumed: false}, nil
	}

	if _, err := uc.remote.SendMessage(ctx, local.RemoteConversationID, ProbeSentinel); err != nil {
		if errors.Is(err, assistant.ErrConversationNotFound) {
			uc.l.Infof(ctx, "open: remote conversation %s expired for subject %s, starting fresh", local.RemoteConversationID, input.SubjectID)
		} else {
			uc.l.Warnf(ctx, "open: liveness probe failed for subject %s, starting fresh: %v", input.SubjectID, err)
		}

		uc.store.Delete(input.SubjectID)
		sess, err := uc.startFresh(ctx, input)
		if err != nil {
			return conversation.OpenOutput{}, err
		}
		return conversation.OpenOutput{Session: sess, Resumed: false}, nil
	}

	// Probe acknowledged; hydrate and refresh recency so resumed sessions
	// survive eviction like recently modified ones.
	refreshed := uc.store.Upsert(local)
	return conversation.OpenOutput{Session: refreshed, Resumed: true}, nil
}

// startFresh creates a remote conversation and a new local session around
// it. Freshly created sessions are not probed: they are known valid at
// creation time.
func (uc *implUseCase) startFresh(ctx context.Context, input conversation.OpenInput) (model.ConversationSession, error) {
	res, err := uc.remote.StartConversation(ctx, &assistant.StartRequest{
		SubjectID: input.SubjectID,
		Inputs:    metadataInputs(input.SubjectMetadata),
	})
	if err != nil {
		return model.ConversationSession{}, err
	}

	now := time.Now()
	sess := model.ConversationSession{
		ID:                   uuid.NewString(),
		SubjectID:            input.SubjectID,
		SubjectMetadata:      input.SubjectMetadata,
		RemoteConversationID: res.ConversationID,
		Transcript: []model.Message{
			{
				ID:        uuid.NewString(),
				Role:      model.RoleAssistant,
				Content:   res.Message,
				Timestamp: now,
			},
		},
		CreatedAt: now,
	}

	return uc.store.Upsert(sess), nil
}

// metadataInputs flattens subject metadata into the inputs map the backend
// expects for prompt variable substitution.
func metadataInputs(meta model.SubjectMetadata) map[string]string {
	inputs := make(map[string]string, len(meta.Display)+2)
	for k, v := range meta.Display {
		inputs[k] = v
	}
	if meta.Title != "" {
		inputs["title"] = meta.Title
	}
	if meta.Category != "" {
		inputs["category"] = meta.Category
	}
	return inputs
}
