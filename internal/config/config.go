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

	// Public base URL embedded into asset instructions so the preview iframe
	// can resolve /assets/{id} links
	BackendURL string

	// Gemini AI (empty key disables the generate endpoint)
	GeminiAPIKey         string
	GeminiConcurrentReqs int

	// Asset store (empty REDIS_URL selects the in-memory store)
	RedisURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:                 getEnvOrDefault("PORT", "7001"),
		Env:                  getEnvOrDefault("ENV", "development"),
		BackendURL:           getEnvOrDefault("BACKEND_URL", "http://localhost:7001"),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
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
