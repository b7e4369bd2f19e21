package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources: a .env file,
// config.yaml, and the JSON prompt catalog under ./config/.
// Load order:
// 1. .env file (environment variables, e.g. CHAT_API_KEY)
// 2. config.yaml (base configuration: api, chat, log, journal sections)
// 3. config/prompts.json (per-concern chat system prompts, merged in)
// Environment variables override same-named settings from the files.
func LoadConfig() {
	// Load environment variables from .env; missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Running without a config file is fine; env vars and
			// defaults cover everything required.
			log.Printf("No base config file (config.yaml) found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading base config file: %w", err))
		}
	}

	// Merge the chat prompt catalog (config/prompts.json).
	viper.SetConfigName("prompts")
	viper.SetConfigType("json")
	viper.AddConfigPath("./config")

	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No prompt catalog (config/prompts.json) found, chat will use the default prompt.")
		} else {
			panic(fmt.Errorf("fatal error merging prompt catalog: %w", err))
		}
	}
}

func setDefaults() {
	viper.SetDefault("api.timeout", 15)
	viper.SetDefault("api.page_size", 5)
	viper.SetDefault("chat.endpoint", "https://api.groq.com/openai/v1/chat/completions")
	viper.SetDefault("chat.model", "llama-3.3-70b-versatile")
	viper.SetDefault("chat.temperature", 0.7)
	viper.SetDefault("chat.max_tokens", 1024)
	viper.SetDefault("chat.default_prompt",
		"You are a compassionate mental health support AI. Provide empathetic, helpful guidance while encouraging professional help when needed.")
	viper.SetDefault("db.path", "data/peersupport.db")
	viper.SetDefault("refresh.stale_minutes", 5)
	viper.SetDefault("log.level", "info")
}
