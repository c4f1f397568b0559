package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"content-copilot/pkg/assistant"
)

func newBackendServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.URL.Path {
		case "/v1/conversations":
			var req assistant.StartRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SubjectID == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(assistant.StartResponse{
				ConversationID: "conv-123",
				Message:        "Hello! Tell me about this post.",
			})

		case "/v1/conversations/conv-123/messages":
			json.NewEncoder(w).Encode(assistant.MessageResponse{
				Answer: "Interesting angle.",
				Stage:  "Pain Exploration",
			})

		case "/v1/conversations/conv-gone/messages":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"conversation_not_exists","message":"Conversation Not Exists."}`))

		case "/v1/conversations/conv-broken/messages":
			w.Write([]byte(`{`))

		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func TestClient(t *testing.T) {
	ts := newBackendServer(t)
	defer ts.Close()

	client := assistant.NewClient(ts.URL, "test-api-key", 5*time.Second)
	ctx := context.Background()

	t.Run("StartConversation", func(t *testing.T) {
		res, err := client.StartConversation(ctx, &assistant.StartRequest{SubjectID: "postA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ConversationID != "conv-123" {
			t.Errorf("unexpected conversation id %q", res.ConversationID)
		}
		if res.Message == "" {
			t.Errorf("expected an opening message")
		}
	})

	t.Run("SendMessage", func(t *testing.T) {
		res, err := client.SendMessage(ctx, "conv-123", "what's the pain here?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Answer != "Interesting angle." {
			t.Errorf("unexpected answer %q", res.Answer)
		}
		if res.Stage != "Pain Exploration" {
			t.Errorf("unexpected stage %q", res.Stage)
		}
	})

	t.Run("Expired Conversation Is Distinguishable", func(t *testing.T) {
		_, err := client.SendMessage(ctx, "conv-gone", "ping")
		if !errors.Is(err, assistant.ErrConversationNotFound) {
			t.Errorf("expected ErrConversationNotFound, got %v", err)
		}
	})

	t.Run("Malformed Response Is An Error", func(t *testing.T) {
		_, err := client.SendMessage(ctx, "conv-broken", "hello")
		if err == nil {
			t.Errorf("expected decode error for malformed body")
		}
		if errors.Is(err, assistant.ErrConversationNotFound) {
			t.Errorf("malformed body must not read as expiry")
		}
	})

	t.Run("Timeout Propagates As Error", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer slow.Close()

		c := assistant.NewClient(slow.URL, "test-api-key", 5*time.Second)
		tctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		if _, err := c.SendMessage(tctx, "conv-123", "hello"); err == nil {
			t.Errorf("expected error when the context deadline passes")
		}
	})
}
