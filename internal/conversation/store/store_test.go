package store

import (
	"fmt"
	"testing"
	"time"

	"content-copilot/internal/model"
)

func sessionFor(subjectID string) model.ConversationSession {
	return model.ConversationSession{
		ID:                   "id-" + subjectID,
		SubjectID:            subjectID,
		RemoteConversationID: "conv-" + subjectID,
		Transcript: []model.Message{
			{ID: "m1", Role: model.RoleAssistant, Content: "hi", Timestamp: time.Now()},
		},
		CreatedAt: time.Now(),
	}
}

func TestMemoryStore(t *testing.T) {
	t.Run("Upsert Is Keyed By Subject", func(t *testing.T) {
		st := NewMemory(Config{})

		first := sessionFor("postA")
		st.Upsert(first)

		second := sessionFor("postA")
		second.Stage = "Pain Exploration"
		st.Upsert(second)

		if got := len(st.List()); got != 1 {
			t.Fatalf("expected a single session per subject, got %d", got)
		}
		stored, _ := st.Get("postA")
		if stored.Stage != "Pain Exploration" {
			t.Errorf("latest upsert must win, got stage %q", stored.Stage)
		}
	})

	t.Run("Upsert Refreshes LastUpdatedAt", func(t *testing.T) {
		st := NewMemory(Config{})

		s := sessionFor("postA")
		s.LastUpdatedAt = time.Now().Add(-time.Hour)
		stored := st.Upsert(s)

		if time.Since(stored.LastUpdatedAt) > time.Minute {
			t.Errorf("upsert must overwrite LastUpdatedAt with now")
		}
	})

	t.Run("Capacity Evicts Least Recently Updated", func(t *testing.T) {
		st := NewMemory(Config{MaxItems: 50})

		for i := 0; i < 50; i++ {
			st.Upsert(sessionFor(fmt.Sprintf("post%02d", i)))
		}
		// Touch the oldest so eviction order follows updates, not inserts.
		st.Upsert(sessionFor("post00"))

		st.Upsert(sessionFor("extra"))

		sessions := st.List()
		if len(sessions) != 50 {
			t.Fatalf("store must hold at most 50 sessions, got %d", len(sessions))
		}
		if _, ok := st.Get("post01"); ok {
			t.Errorf("the least recently updated session must be evicted")
		}
		if _, ok := st.Get("post00"); !ok {
			t.Errorf("a recently touched session must survive eviction")
		}
		if _, ok := st.Get("extra"); !ok {
			t.Errorf("the newly upserted session must be present")
		}
	})

	t.Run("Overload Keeps Most Recent", func(t *testing.T) {
		st := NewMemory(Config{MaxItems: 5})

		for i := 0; i < 9; i++ {
			st.Upsert(sessionFor(fmt.Sprintf("post%d", i)))
		}

		sessions := st.List()
		if len(sessions) != 5 {
			t.Fatalf("expected 5 sessions after overload, got %d", len(sessions))
		}
		for i := 4; i < 9; i++ {
			if _, ok := st.Get(fmt.Sprintf("post%d", i)); !ok {
				t.Errorf("post%d should have survived as one of the most recent", i)
			}
		}
	})

	t.Run("List Orders Most Recent First", func(t *testing.T) {
		st := NewMemory(Config{})

		st.Upsert(sessionFor("postA"))
		st.Upsert(sessionFor("postB"))
		st.Upsert(sessionFor("postA"))

		sessions := st.List()
		if len(sessions) != 2 {
			t.Fatalf("expected 2 sessions, got %d", len(sessions))
		}
		if sessions[0].SubjectID != "postA" {
			t.Errorf("most recently updated session must come first, got %q", sessions[0].SubjectID)
		}
	})

	t.Run("Delete And Clear", func(t *testing.T) {
		st := NewMemory(Config{})

		st.Upsert(sessionFor("postA"))
		st.Upsert(sessionFor("postB"))

		st.Delete("postA")
		if _, ok := st.Get("postA"); ok {
			t.Errorf("deleted session still present")
		}

		st.Clear()
		if got := len(st.List()); got != 0 {
			t.Errorf("clear must empty the store, %d left", got)
		}
	})

	t.Run("Get Returns A Copy", func(t *testing.T) {
		st := NewMemory(Config{})
		st.Upsert(sessionFor("postA"))

		got, _ := st.Get("postA")
		got.Transcript[0].Content = "mutated"

		fresh, _ := st.Get("postA")
		if fresh.Transcript[0].Content == "mutated" {
			t.Errorf("callers must not be able to mutate stored state through Get")
		}
	})
}
