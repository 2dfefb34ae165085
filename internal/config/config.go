package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenRouter upstream
	OpenRouterAPIURL string
	OpenRouterModel  string

	// Frontend
	FrontendURL string

	// Sessions
	SessionTTLMinutes int

	// Upstream HTTP client. 0 means the transport default (no timeout).
	UpstreamTimeoutSeconds int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		Env:                    getEnvOrDefault("ENV", "development"),
		OpenRouterAPIURL:       getEnvOrDefault("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterModel:        getEnvOrDefault("OPENROUTER_MODEL", "deepseek/deepseek-r1:free"),
		FrontendURL:            getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		SessionTTLMinutes:      getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 60),
		UpstreamTimeoutSeconds: getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 0),
	}

	return cfg
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
