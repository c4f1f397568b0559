package store

import (
	"sort"

	"content-copilot/internal/model"
)

// Capacity defaults. MaxItems is the hard cap enforced on every upsert;
// TrimTo is the size the set is cut to before retrying a failed write.
const (
	DefaultMaxItems = 50
	DefaultTrimTo   = 20
)

// Store is the session repository for one named collection.
// Persistence is best-effort: writes never fail the caller and reads never
// surface malformed data as an error. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns the session for a subject, if present.
	Get(subjectID string) (model.ConversationSession, bool)

	// Upsert inserts or replaces the session keyed by SubjectID, refreshes
	// LastUpdatedAt, and enforces the capacity bound by evicting the
	// least-recently-updated sessions. Returns the stored session.
	Upsert(session model.ConversationSession) model.ConversationSession

	// Delete removes the subject's session if present.
	Delete(subjectID string)

	// Clear removes all sessions.
	Clear()

	// List returns all sessions ordered by LastUpdatedAt descending.
	List() []model.ConversationSession
}

// Config tunes a store's capacity behavior. Zero values fall back to the
// package defaults.
type Config struct {
	MaxItems int
	TrimTo   int
}

func (c Config) withDefaults() Config {
	if c.MaxItems <= 0 {
		c.MaxItems = DefaultMaxItems
	}
	if c.TrimTo <= 0 {
		c.TrimTo = DefaultTrimTo
	}
	return c
}

// evictOldest drops sessions with the oldest LastUpdatedAt until at most
// max remain. The map is mutated in place.
func evictOldest(sessions map[string]model.ConversationSession, max int) {
	if len(sessions) <= max {
		return
	}
	ordered := byOldestFirst(sessions)
	for _, s := range ordered[:len(ordered)-max] {
		delete(sessions, s.SubjectID)
	}
}

// trimToNewest keeps only the keep most-recently-updated sessions.
func trimToNewest(sessions map[string]model.ConversationSession, keep int) {
	if len(sessions) <= keep {
		return
	}
	ordered := byOldestFirst(sessions)
	for _, s := range ordered[:len(ordered)-keep] {
		delete(sessions, s.SubjectID)
	}
}

func byOldestFirst(sessions map[string]model.ConversationSession) []model.ConversationSession {
	ordered := make([]model.ConversationSession, 0, len(sessions))
	for _, s := range sessions {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LastUpdatedAt.Before(ordered[j].LastUpdatedAt)
	})
	return ordered
}
