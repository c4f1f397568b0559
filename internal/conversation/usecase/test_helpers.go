package usecase

import (
	"context"
	"sync"

	"content-copilot/pkg/assistant"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock assistant backend for testing
type mockAssistant struct {
	mu         sync.Mutex
	startFunc  func(ctx context.Context, req *assistant.StartRequest) (*assistant.StartResponse, error)
	sendFunc   func(ctx context.Context, conversationID, query string) (*assistant.MessageResponse, error)
	startCalls int
	sendCalls  []string // queries in call order
}

func (m *mockAssistant) StartConversation(ctx context.Context, req *assistant.StartRequest) (*assistant.StartResponse, error) {
	m.mu.Lock()
	m.startCalls++
	m.mu.Unlock()

	if m.startFunc != nil {
		return m.startFunc(ctx, req)
	}
	return &assistant.StartResponse{ConversationID: "conv-" + req.SubjectID, Message: "Hello! What shall we dig into?"}, nil
}

func (m *mockAssistant) SendMessage(ctx context.Context, conversationID, query string) (*assistant.MessageResponse, error) {
	m.mu.Lock()
	m.sendCalls = append(m.sendCalls, query)
	m.mu.Unlock()

	if m.sendFunc != nil {
		return m.sendFunc(ctx, conversationID, query)
	}
	return &assistant.MessageResponse{Answer: "ack"}, nil
}

func (m *mockAssistant) queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.sendCalls))
	copy(out, m.sendCalls)
	return out
}

func (m *mockAssistant) starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startCalls
}
