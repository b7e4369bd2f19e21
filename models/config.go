package models

// ChatConfig represents the chat section of the merged configuration
// (config.yaml plus config/prompts.json).
type ChatConfig struct {
	Endpoint      string            `json:"endpoint" mapstructure:"endpoint"`
	Model         string            `json:"model" mapstructure:"model"`
	Temperature   float64           `json:"temperature" mapstructure:"temperature"`
	MaxTokens     int               `json:"max_tokens" mapstructure:"max_tokens"`
	DefaultPrompt string            `json:"default_prompt" mapstructure:"default_prompt"`
	Prompts       map[string]string `json:"prompts" mapstructure:"prompts"`
}

// APIConfig represents the api section of the configuration.
type APIConfig struct {
	BaseURL  string `json:"base_url" mapstructure:"base_url"`
	Timeout  int    `json:"timeout" mapstructure:"timeout"` // seconds
	PageSize int    `json:"page_size" mapstructure:"page_size"`
}
