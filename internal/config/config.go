package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Question sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	// CORSAllowedOrigins is a comma-separated list; "*" allows any origin.
	CORSAllowedOrigins string

	QuestionSource   string
	QuestionBankPath string
	Database         DatabaseConfig

	// RedisURL empty disables the insights cache.
	RedisURL         string
	InsightsCacheTTL time.Duration

	SessionID       string
	ShutdownTimeout time.Duration

	Events EventConfig
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cacheTTL, err := getDuration("INSIGHTS_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	eventsEnabled, err := getBool("EVENTS_ENABLED", false)
	if err != nil {
		return nil, err
	}
	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		QuestionSource:     getEnv("QUESTION_SOURCE", SourceBuiltin),
		QuestionBankPath:   getEnv("QUESTION_BANK_PATH", "questions.json"),
		Database:           database,
		RedisURL:           os.Getenv("REDIS_URL"),
		InsightsCacheTTL:   cacheTTL,
		SessionID:          getEnv("SESSION_ID", "default"),
		ShutdownTimeout:    shutdownTimeout,
		Events: EventConfig{
			Enabled:      eventsEnabled,
			Publisher:    getEnv("EVENTS_PUBLISHER", "kafka"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("LEARNING_EVENTS_TOPIC", "learning-events"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.QuestionSource {
	case SourceBuiltin, SourceFile, SourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown QUESTION_SOURCE %q", c.QuestionSource)
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
