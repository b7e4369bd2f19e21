package models

// ChatMessage is one entry in a chat session's running history.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "assistant"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// CompletionMessage is one message in the completion request body.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the body sent to the chat completion endpoint.
type CompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []CompletionMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

// CompletionResponse is the subset of the completion reply the client reads.
type CompletionResponse struct {
	Choices []struct {
		Message CompletionMessage `json:"message"`
	} `json:"choices"`
}
