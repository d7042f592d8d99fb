package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"dungeon.db"`

	// SecretKey signs session tokens.
	SecretKey string `env:"SECRET_KEY" envDefault:"a_very_secret_key_for_dev"`

	// Local narrator (Ollama).
	OllamaURL   string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"deepseek-r1:1.5b"`
	UseLocal    bool   `env:"USE_LOCAL" envDefault:"false"`

	// Cloud narrator (Gemini via its OpenAI-compatible endpoint).
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`

	// AITimeout bounds each narrator call; past it the call counts as a
	// transport timeout, never a hang.
	AITimeout time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"60s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	// RateLimitRPS is the per-IP request budget.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot reach any narrator.
func (c *Config) Validate() error {
	if !c.UseLocal && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set when USE_LOCAL is false")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_REQUEST_TIMEOUT must be positive")
	}
	return nil
}
