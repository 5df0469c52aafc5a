// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	LLM      LLMConfig
	Honeypot HoneypotConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MongoConfig holds the session store configuration.
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds the session cache configuration.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// LLMConfig holds the configuration for the language-model collaborator.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HoneypotConfig holds the engagement policy configuration.
type HoneypotConfig struct {
	// APIKey is the shared secret checked before any turn is processed.
	APIKey string
	// MaxMessages is the exchange count at which the stop condition trips.
	MaxMessages int
	// DefaultReply is surfaced when no persona reply was generated.
	DefaultReply string
	// StopReplyEnabled substitutes the surfaced reply once the stop
	// condition holds. Off by default; shouldStop is always computed.
	StopReplyEnabled bool
	// StopReply is the substitute reply used when StopReplyEnabled is set.
	StopReply string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "honeypot"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 180)) * time.Second,
		},
		LLM: LLMConfig{
			BaseURL: getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:  getEnv("LLM_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			Timeout: time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Honeypot: HoneypotConfig{
			APIKey:           getEnv("HONEYPOT_API_KEY", ""),
			MaxMessages:      getEnvAsInt("HONEYPOT_MAX_MESSAGES", 15),
			DefaultReply:     getEnv("HONEYPOT_DEFAULT_REPLY", "Okay."),
			StopReplyEnabled: getEnvAsBool("HONEYPOT_STOP_REPLY_ENABLED", false),
			StopReply:        getEnv("HONEYPOT_STOP_REPLY", "Okay, I will check and get back to you."),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Honeypot.APIKey == "" {
		return nil, fmt.Errorf("HONEYPOT_API_KEY is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean with a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
