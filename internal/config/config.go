package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Gemini text generation
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// FAL image/video generation
	FALAPIKey  string
	FALBaseURL string

	// Stability image fallback
	StabilityAPIKey  string
	StabilityBaseURL string

	// Luma scraper
	LumaSessionToken string
	LumaBaseURL      string
	LumaPollAttempts int
	LumaPollDelaySec int

	// Bluesky
	BlueskyService     string
	BlueskyHandle      string
	BlueskyAppPassword string

	// Twitter (OAuth 1.0a user context)
	TwitterConsumerKey    string
	TwitterConsumerSecret string
	TwitterAccessToken    string
	TwitterAccessSecret   string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: getEnv("GEMINI_API_BASE_URL", ""),

		FALAPIKey:  getEnv("FAL_API_KEY", ""),
		FALBaseURL: getEnv("FAL_API_BASE_URL", "https://fal.run/"),

		StabilityAPIKey:  getEnv("STABILITY_API_KEY", ""),
		StabilityBaseURL: getEnv("STABILITY_API_BASE_URL", "https://api.stability.ai/v2beta/"),

		LumaSessionToken: getEnv("LUMA_SESSION_TOKEN", ""),
		LumaBaseURL:      getEnv("LUMA_API_BASE_URL", "https://internal.lumalabs.ai/api/"),
		LumaPollAttempts: getEnvInt("LUMA_POLL_ATTEMPTS", 30),
		LumaPollDelaySec: getEnvInt("LUMA_POLL_DELAY_SECONDS", 2),

		BlueskyService:     getEnv("BLUESKY_SERVICE", "https://bsky.social"),
		BlueskyHandle:      getEnv("BLUESKY_HANDLE", ""),
		BlueskyAppPassword: getEnv("BLUESKY_APP_PASSWORD", ""),

		TwitterConsumerKey:    getEnv("TWITTER_CONSUMER_KEY", ""),
		TwitterConsumerSecret: getEnv("TWITTER_CONSUMER_SECRET", ""),
		TwitterAccessToken:    getEnv("TWITTER_ACCESS_TOKEN", ""),
		TwitterAccessSecret:   getEnv("TWITTER_ACCESS_TOKEN_SECRET", ""),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "campaign-assets"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
