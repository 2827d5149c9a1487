package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerHost  string
	ServerPort  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis is optional; quest caching and rate limiting are skipped without it.
	RedisURL string

	// AI gateway configuration
	AIProvider     string
	AITimeout      time.Duration
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string
	GeminiAPIKey   string
	GeminiModel    string

	// Access control. Auth is disabled when AuthPassphraseHash is empty.
	AuthPassphraseHash string
	JWTSecret          string
	TokenTTL           time.Duration

	// Meal photo uploads. Disabled when S3BucketName is empty.
	S3BucketName string
	AWSRegion    string

	RecomputeRateLimit  int
	BonusPerAchievement bool
	Location            *time.Location
}

// AuthEnabled reports whether requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthPassphraseHash != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from .env, environment
// variables and Docker secrets, in increasing order of precedence for secrets.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Env:         GetEnvironment(),
		ServerHost:  getEnv("SERVER_HOST", ""),
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		SQLitePath: getEnv("SQLITE_PATH", "calorie_quest.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getSecret("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "calorie_quest"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisURL: getEnv("REDIS_URL", ""),

		AIProvider:     strings.ToLower(getEnv("AI_PROVIDER", "auto")),
		AITimeout:      getEnvDuration("AI_TIMEOUT", 30*time.Second),
		DeepSeekAPIKey: getSecret("DEEPSEEK_API_KEY"),
		DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		GeminiAPIKey:   getSecret("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		AuthPassphraseHash: getSecret("AUTH_PASSPHRASE_HASH"),
		JWTSecret:          getSecret("JWT_SECRET"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 30*24*time.Hour),

		S3BucketName: getEnv("S3_BUCKET_NAME", ""),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),

		RecomputeRateLimit:  getEnvInt("RECOMPUTE_RATE_LIMIT", 10),
		BonusPerAchievement: getEnvBool("GAMIFICATION_BONUS_PER_ACHIEVEMENT", false),
	}

	loc, err := time.LoadLocation(getEnv("TZ", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ: %w", err)
	}
	cfg.Location = loc

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
