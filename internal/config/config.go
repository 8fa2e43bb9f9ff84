package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	YouTubeAPIKey string
	GroqAPIKey    string
	GroqModel     string
	LogLevel      string
	Environment   string
	CORSOrigins   string
}

func Load() *Config {
	// Best-effort: a missing .env file just means plain env vars are used.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModel:     getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
