package store

import (
	"sync"
	"time"

	"content-copilot/internal/model"
)

// Memory is a map-backed Store with no persistence. It carries the same
// capacity semantics as the file-backed store and doubles as the test
// replacement for it.
type Memory struct {
	mu       sync.Mutex
	cfg      Config
	sessions map[string]model.ConversationSession
}

// NewMemory creates an in-memory store.
func NewMemory(cfg Config) *Memory {
	return &Memory{
		cfg:      cfg.withDefaults(),
		sessions: make(map[string]model.ConversationSession),
	}
}

func (m *Memory) Get(subjectID string) (model.ConversationSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[subjectID]
	if !ok {
		return model.ConversationSession{}, false
	}
	return s.Clone(), true
}

func (m *Memory) Upsert(session model.ConversationSession) model.ConversationSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastUpdatedAt = time.Now()
	m.sessions[session.SubjectID] = session.Clone()
	evictOldest(m.sessions, m.cfg.MaxItems)
	return session
}

func (m *Memory) Delete(subjectID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, subjectID)
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = make(map[string]model.ConversationSession)
}

func (m *Memory) List() []model.ConversationSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := byOldestFirst(m.sessions)
	out := make([]model.ConversationSession, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		out = append(out, ordered[i].Clone())
	}
	return out
}
