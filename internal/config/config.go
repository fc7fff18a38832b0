// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Firecrawl scraping API
	FirecrawlAPIKey  string
	FirecrawlBaseURL string

	// AI provider settings
	AIProvider string // "gemini", "openai", "claude"

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	ClaudeAPIKey  string
	ClaudeModel   string
	ClaudeBaseURL string

	// Per-IP rate limiting for the tool endpoints
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		FirecrawlAPIKey:  os.Getenv("FIRECRAWL_API_KEY"),
		FirecrawlBaseURL: os.Getenv("FIRECRAWL_BASE_URL"),

		AIProvider: envOrDefault("AI_PROVIDER", "gemini"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.0-flash-lite"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		ClaudeAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		ClaudeModel:   envOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		ClaudeBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),
	}

	rps, err := strconv.ParseFloat(envOrDefault("RATE_LIMIT_RPS", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(envOrDefault("RATE_LIMIT_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	cfg.RateLimitRPS = rps
	cfg.RateLimitBurst = burst

	if cfg.FirecrawlAPIKey == "" {
		return nil, fmt.Errorf("FIRECRAWL_API_KEY must be set")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
