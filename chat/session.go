// Package chat implements the AI assistant session. A session is scoped to
// one emotional concern: the concern selects the system prompt, and the
// whole message history rides along on every completion request. One
// request per user message, no streaming.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"peersupport/models"
)

// ErrEmptyMessage is returned when the trimmed input is empty; no request
// is sent.
var ErrEmptyMessage = errors.New("message cannot be empty")

// fallbackReply is used when the completion comes back without content.
const fallbackReply = "I'm here to listen. Could you tell me more?"

// Session is one running conversation with the assistant.
type Session struct {
	cfg     models.ChatConfig
	apiKey  string
	concern string
	prompt  string
	http    *http.Client

	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewSession opens a conversation about the given concern. The system
// prompt comes from the configured prompt catalog, falling back to the
// default prompt for unknown concerns. The assistant's greeting is seeded
// into the history immediately.
func NewSession(cfg models.ChatConfig, apiKey, concern string) *Session {
	prompt, ok := cfg.Prompts[concern]
	if !ok || prompt == "" {
		prompt = cfg.DefaultPrompt
	}

	s := &Session{
		cfg:     cfg,
		apiKey:  apiKey,
		concern: concern,
		prompt:  prompt,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Text:      fmt.Sprintf("Hello! I'm here to help you with %s. How are you feeling today? Feel free to share what's on your mind.", concern),
		Timestamp: time.Now().Unix(),
	})
	return s
}

// Concern returns the concern this session is scoped to.
func (s *Session) Concern() string {
	return s.concern
}

// Messages returns a copy of the running history, greeting included.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.messages...)
}

// Send submits one user message and returns the assistant's reply. The
// user message is recorded before the request goes out; on failure it stays
// in the history so the user can see what they said and retry manually.
func (s *Session) Send(ctx context.Context, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      "user",
		Text:      text,
		Timestamp: time.Now().Unix(),
	})
	history := make([]models.CompletionMessage, 0, len(s.messages)+1)
	history = append(history, models.CompletionMessage{Role: "system", Content: s.prompt})
	for _, m := range s.messages {
		history = append(history, models.CompletionMessage{Role: m.Role, Content: m.Text})
	}
	s.mu.Unlock()

	replyText, err := s.complete(ctx, history)
	if err != nil {
		return nil, err
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      "assistant",
		Text:      replyText,
		Timestamp: time.Now().Unix(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.mu.Unlock()
	return &reply, nil
}

func (s *Session) complete(ctx context.Context, history []models.CompletionMessage) (string, error) {
	body, err := json.Marshal(models.CompletionRequest{
		Model:       s.cfg.Model,
		Messages:    history,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error: %d", resp.StatusCode)
	}

	var completion models.CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return completion.Choices[0].Message.Content, nil
}
