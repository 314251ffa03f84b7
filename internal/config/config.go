package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application, loaded once from the
// environment (optionally seeded from a .env file).
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Unsplash UnsplashConfig
	PayOS    PayOSConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	PostgresURL string
}

type AIConfig struct {
	Provider string // "gemini" (default) or "openai"
	APIKey   string
	Model    string
}

type UnsplashConfig struct {
	AccessKey string
}

type PayOSConfig struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
}

type JWTConfig struct {
	Secret string
}

// Load reads configuration from the environment. Missing service credentials
// are warnings, not errors: the affected feature degrades per its own
// contract (AI misconfiguration is surfaced per request, images soft-fail).
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			PostgresURL: os.Getenv("POSTGRES_URL"),
		},
		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", "gemini"),
			APIKey:   aiKey(getEnv("AI_PROVIDER", "gemini")),
			Model:    os.Getenv("AI_MODEL"),
		},
		Unsplash: UnsplashConfig{
			AccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		},
		PayOS: PayOSConfig{
			ClientID:    os.Getenv("PAYOS_CLIENT_ID"),
			APIKey:      os.Getenv("PAYOS_API_KEY"),
			ChecksumKey: os.Getenv("PAYOS_CHECKSUM_KEY"),
			ReturnURL:   os.Getenv("PAYOS_RETURN_URL"),
			CancelURL:   os.Getenv("PAYOS_CANCEL_URL"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
	}

	if cfg.AI.APIKey == "" {
		log.Println("Warning: AI credentials not configured. Trip generation will fail until set.")
	}
	if cfg.Unsplash.AccessKey == "" {
		log.Println("Warning: UNSPLASH_ACCESS_KEY not configured. Trips will be created without images.")
	}

	return cfg
}

func aiKey(provider string) string {
	if provider == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
