// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingEnv is returned by CheckRequired when required settings are absent.
var ErrMissingEnv = errors.New("missing required environment variables")

// Environment variables that must be set before chat requests are served.
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvWebsiteURL   = "WEBSITE_URL"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	FrontendURL     string
	OpenAIAPIKey    string
	WebsiteURL      string
	LogPath         string
	RateLimit       RateLimitConfig
	Telemetry       TelemetryConfig
	ConversationLog ConversationLogConfig
}

// RateLimitConfig bounds chat requests per client address.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// TelemetryConfig controls the OpenTelemetry file exporters.
type TelemetryConfig struct {
	Enabled bool
	Dir     string
}

// ConversationLogConfig controls JSON conversation logging.
type ConversationLogConfig struct {
	Enabled   bool
	Path      string
	QueueSize int
}

// Load reads configuration from environment variables.
// Missing API credentials do not fail Load; they are reported per request by CheckRequired.
func Load() (*Config, error) {
	queueSize := getEnvInt("CONVERSATION_LOG_QUEUE_SIZE", 1000)
	if queueSize <= 0 {
		queueSize = 1000
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  getEnv("FRONTEND_URL", ""),
		OpenAIAPIKey: getEnv(EnvOpenAIAPIKey, ""),
		WebsiteURL:   getEnv(EnvWebsiteURL, ""),
		LogPath:      getEnv("LOG_PATH", "./data/logs/leguide.log"),
		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 10),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", 10*time.Second),
		},
		Telemetry: TelemetryConfig{
			Enabled: getEnvBool("TELEMETRY_ENABLED", true),
			Dir:     getEnv("TELEMETRY_DIR", "./data/logs"),
		},
		ConversationLog: ConversationLogConfig{
			Enabled:   getEnvBool("CONVERSATION_LOG_ENABLED", true),
			Path:      getEnv("CONVERSATION_LOG_PATH", "./data/logs/conversations.ndjson"),
			QueueSize: queueSize,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all structural configuration fields are usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be > 0")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}
	if c.Telemetry.Enabled && c.Telemetry.Dir == "" {
		return fmt.Errorf("TELEMETRY_DIR cannot be empty")
	}
	if c.ConversationLog.Enabled && c.ConversationLog.Path == "" {
		return fmt.Errorf("CONVERSATION_LOG_PATH cannot be empty")
	}
	return nil
}

// MissingRequired lists the required environment variables that are unset.
func (c *Config) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		missing = append(missing, EnvOpenAIAPIKey)
	}
	if strings.TrimSpace(c.WebsiteURL) == "" {
		missing = append(missing, EnvWebsiteURL)
	}
	return missing
}

// CheckRequired returns an error wrapping ErrMissingEnv if any required setting is unset.
func (c *Config) CheckRequired() error {
	missing := c.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

// AllowedOrigins returns the CORS origins for the configured frontend.
func (c *Config) AllowedOrigins() []string {
	if c.IsDevelopment() {
		return []string{"*"}
	}
	return []string{c.FrontendURL}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
