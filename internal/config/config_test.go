package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "7001" {
		t.Errorf("Port = %q, want 7001", cfg.Port)
	}
	if cfg.BackendURL != "http://localhost:7001" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.GeminiConcurrentReqs != 5 {
		t.Errorf("GeminiConcurrentReqs = %d, want 5", cfg.GeminiConcurrentReqs)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL should default to empty, got %q", cfg.RedisURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("GEMINI_CONCURRENT_REQUESTS", "2")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.BackendURL != "https://api.example.com" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.GeminiConcurrentReqs != 2 {
		t.Errorf("GeminiConcurrentReqs = %d, want 2", cfg.GeminiConcurrentReqs)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("GEMINI_CONCURRENT_REQUESTS", "many")

	cfg := Load()
	if cfg.GeminiConcurrentReqs != 5 {
		t.Errorf("GeminiConcurrentReqs = %d, want default 5", cfg.GeminiConcurrentReqs)
	}
}
