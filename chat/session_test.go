package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/chat"
	"peersupport/models"
)

func testConfig(endpoint string) models.ChatConfig {
	return models.ChatConfig{
		Endpoint:      endpoint,
		Model:         "llama-3.3-70b-versatile",
		Temperature:   0.7,
		MaxTokens:     1024,
		DefaultPrompt: "You are a compassionate mental health support AI.",
		Prompts: map[string]string{
			"Anxiety": "You are a calming AI counselor specializing in anxiety management.",
		},
	}
}

func completionServer(t *testing.T, reply string, gotReq **models.CompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req models.CompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if gotReq != nil {
			*gotReq = &req
		}

		resp := models.CompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message models.CompletionMessage `json:"message"`
		}{Message: models.CompletionMessage{Role: "assistant", Content: reply}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestSessionSeedsGreeting(t *testing.T) {
	s := chat.NewSession(testConfig("http://unused"), "test-key", "Anxiety")

	messages := s.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "assistant", messages[0].Role)
	assert.Contains(t, messages[0].Text, "Anxiety")
}

func TestSendUsesConcernPromptAndHistory(t *testing.T) {
	var gotReq *models.CompletionRequest
	srv := completionServer(t, "That sounds really hard.", &gotReq)
	defer srv.Close()

	s := chat.NewSession(testConfig(srv.URL), "test-key", "Anxiety")

	reply, err := s.Send(context.Background(), "I can't stop worrying.")
	require.NoError(t, err)
	assert.Equal(t, "That sounds really hard.", reply.Text)

	require.NotNil(t, gotReq)
	assert.Equal(t, "llama-3.3-70b-versatile", gotReq.Model)
	require.NotEmpty(t, gotReq.Messages)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "anxiety management")
	// Greeting + user message follow the system prompt.
	assert.Equal(t, "assistant", gotReq.Messages[1].Role)
	assert.Equal(t, "user", gotReq.Messages[2].Role)
	assert.Equal(t, "I can't stop worrying.", gotReq.Messages[2].Content)

	// History holds greeting, user message, reply.
	assert.Len(t, s.Messages(), 3)
}

func TestUnknownConcernFallsBackToDefaultPrompt(t *testing.T) {
	var gotReq *models.CompletionRequest
	srv := completionServer(t, "ok", &gotReq)
	defer srv.Close()

	s := chat.NewSession(testConfig(srv.URL), "test-key", "Homesickness")

	_, err := s.Send(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, gotReq)
	assert.Contains(t, gotReq.Messages[0].Content, "compassionate mental health support")
}

func TestSendEmptyMessage(t *testing.T) {
	s := chat.NewSession(testConfig("http://unused"), "test-key", "Anxiety")

	_, err := s.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	assert.Len(t, s.Messages(), 1, "nothing appended")
}

func TestEmptyChoicesFallbackReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CompletionResponse{})
	}))
	defer srv.Close()

	s := chat.NewSession(testConfig(srv.URL), "test-key", "Anxiety")

	reply, err := s.Send(context.Background(), "are you there?")
	require.NoError(t, err)
	assert.Equal(t, "I'm here to listen. Could you tell me more?", reply.Text)
}

func TestAPIErrorKeepsUserMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := chat.NewSession(testConfig(srv.URL), "test-key", "Anxiety")

	_, err := s.Send(context.Background(), "hello?")
	require.Error(t, err)

	messages := s.Messages()
	require.Len(t, messages, 2, "the user's message stays in the history for a manual retry")
	assert.Equal(t, "user", messages[1].Role)
}
