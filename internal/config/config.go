package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream completion provider
	LLMProvider     string
	MistralAPIKey   string
	MistralURL      string
	MistralModel    string
	GeminiAPIKey    string
	GeminiModel     string
	UpstreamTimeout time.Duration

	// Redis (optional reply event feed)
	RedisURL           string
	ReplyEventsChannel string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8000"),
		Env:                getEnvOrDefault("ENV", "development"),
		LLMProvider:        getEnvOrDefault("LLM_PROVIDER", "mistral"),
		MistralAPIKey:      os.Getenv("MISTRAL_API_KEY"),
		MistralURL:         getEnvOrDefault("MISTRAL_URL", "https://api.mistral.ai/v1"),
		MistralModel:       getEnvOrDefault("MISTRAL_MODEL", "mistral-tiny"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		UpstreamTimeout:    time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 60)) * time.Second,
		RedisURL:           os.Getenv("REDIS_URL"),
		ReplyEventsChannel: getEnvOrDefault("REPLY_EVENTS_CHANNEL", "ai_reply:events"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "text"),
		LogFile:            os.Getenv("LOG_FILE"),
	}

	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 60 * time.Second
	}

	return cfg
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.MistralAPIKey
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
