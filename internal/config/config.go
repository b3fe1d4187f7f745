package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL   string
	RunMigrations bool

	// Auth0
	Auth0Domain   string
	Auth0Audience string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Locale
	Timezone      string
	DisplayLocale string

	// Natural-language extraction
	Gemini GeminiConfig

	// Event broker
	AMQP AMQPConfig

	// S3 export archive storage
	S3 S3Config
}

// GeminiConfig holds the hosted language model configuration
type GeminiConfig struct {
	APIKey         string
	Model          string
	RatePerMinute  int
	BurstSize      int
	RequestTimeout time.Duration
}

// Enabled reports whether text extraction is configured
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

// AMQPConfig holds RabbitMQ configuration
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether event publishing to the broker is configured
func (a AMQPConfig) Enabled() bool {
	return a.URL != ""
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether export archiving is configured
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		Auth0Domain:   getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience: getEnv("AUTH0_AUDIENCE", ""),
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:           getEnv("ENV", "development"),
		Timezone:      getEnv("APP_TIMEZONE", "Asia/Kolkata"),
		DisplayLocale: getEnv("DISPLAY_LOCALE", "en-IN"),
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			RatePerMinute:  getEnvInt("EXTRACT_RATE_PER_MINUTE", 20),
			BurstSize:      getEnvInt("EXTRACT_BURST", 5),
			RequestTimeout: time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "expense-events"),
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "ap-south-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth0Domain == "" {
		return fmt.Errorf("AUTH0_DOMAIN is required")
	}
	if c.Auth0Audience == "" {
		return fmt.Errorf("AUTH0_AUDIENCE is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE is invalid: %w", err)
	}
	if c.Gemini.RatePerMinute <= 0 {
		return fmt.Errorf("EXTRACT_RATE_PER_MINUTE must be positive")
	}
	if c.Gemini.BurstSize <= 0 {
		return fmt.Errorf("EXTRACT_BURST must be positive")
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
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
