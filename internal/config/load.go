package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, pulls secrets from the environment
// (after loading .env if present) and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// .env is optional; real deployments export the variables directly
	_ = godotenv.Load()
	cfg.Secrets = SecretsFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// SecretsFromEnv reads API credentials from the process environment.
// GEMINI_API_KEYS is a comma separated list; GEMINI_API_KEY is accepted for a single key.
func SecretsFromEnv() Secrets {
	keys := splitKeys(os.Getenv("GEMINI_API_KEYS"))
	if len(keys) == 0 {
		keys = splitKeys(os.Getenv("GEMINI_API_KEY"))
	}
	return Secrets{
		GeminiAPIKeys:    keys,
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}
