package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config, loaded from environment variables
type Config struct {
	Port      string
	JWTSecret string
	Provider  string

	RedisAddr string

	RateLimit       int
	RateLimitWindow time.Duration

	SweepSchedule string
	SweepEnabled  bool
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "dev"),
		Provider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RateLimit:       getEnvInt("AI_RATE_LIMIT", 10),
		RateLimitWindow: getEnvDuration("AI_RATE_LIMIT_WINDOW", time.Minute),
		SweepSchedule:   getEnvOrDefault("INVITE_SWEEP_SCHEDULE", "*/15 * * * *"),
		SweepEnabled:    getEnvOrDefault("INVITE_SWEEP_ENABLED", "true") == "true",
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.RateLimit < 1 {
		return errors.New("AI_RATE_LIMIT must be positive")
	}
	if config.RateLimitWindow <= 0 {
		return errors.New("AI_RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
