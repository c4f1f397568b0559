package model

import "time"

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SubjectMetadata carries display fields for the subject a conversation is
// about (a scraped post, a call recording). Opaque to the session manager.
type SubjectMetadata struct {
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Display  map[string]string `json:"display,omitempty"`
}

// ConversationSession is one persisted multi-turn dialogue tied to a subject.
// SubjectID is the unique key: the store never holds two sessions for the
// same subject. Transcript is append-only; eviction removes whole sessions,
// never individual messages.
type ConversationSession struct {
	ID                   string          `json:"id"`
	SubjectID            string          `json:"subjectId"`
	SubjectMetadata      SubjectMetadata `json:"subjectMetadata"`
	RemoteConversationID string          `json:"remoteConversationId"`
	Transcript           []Message       `json:"transcript"`
	Stage                string          `json:"stage"`
	CreatedAt            time.Time       `json:"createdAt"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
}

// Clone returns a deep copy so callers can mutate freely without aliasing
// the store's in-memory state.
func (s ConversationSession) Clone() ConversationSession {
	cp := s
	cp.Transcript = make([]Message, len(s.Transcript))
	copy(cp.Transcript, s.Transcript)
	if s.SubjectMetadata.Display != nil {
		cp.SubjectMetadata.Display = make(map[string]string, len(s.SubjectMetadata.Display))
		for k, v := range s.SubjectMetadata.Display {
			cp.SubjectMetadata.Display[k] = v
		}
	}
	return cp
}
