package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP client for the conversational AI backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new backend client. A non-positive timeout falls back
// to the default; per-call deadlines via context still apply on top.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StartConversation creates a remote conversation for a subject.
func (c *Client) StartConversation(ctx context.Context, req *StartRequest) (*StartResponse, error) {
	var result StartResponse
	if err := c.post(ctx, "/v1/conversations", req, &result); err != nil {
		return nil, err
	}
	if result.ConversationID == "" {
		return nil, fmt.Errorf("start conversation: %w", ErrEmptyAnswer)
	}
	return &result, nil
}

// SendMessage sends one user message to an existing remote conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID, query string) (*MessageResponse, error) {
	path := fmt.Sprintf("/v1/conversations/%s/messages", conversationID)

	var result MessageResponse
	if err := c.post(ctx, path, messageRequest{Query: query}, &result); err != nil {
		return nil, err
	}
	if result.Answer == "" {
		return nil, fmt.Errorf("send message: %w", ErrEmptyAnswer)
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call assistant backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		var apiErr errorResponse
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)
		return fmt.Errorf("assistant backend %s: %w", apiErr.Code, ErrConversationNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assistant backend error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return nil
}
