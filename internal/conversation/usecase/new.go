package usecase

import (
	"content-copilot/internal/conversation/store"
	"content-copilot/pkg/assistant"
	pkgLog "content-copilot/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	store  store.Store
	remote assistant.IAssistant
	gate   *subjectGate
}

// New creates a new conversation UseCase instance bound to one session
// collection.
func New(l pkgLog.Logger, st store.Store, remote assistant.IAssistant) *implUseCase {
	return &implUseCase{
		l:      l,
		store:  st,
		remote: remote,
		gate:   newSubjectGate(),
	}
}
