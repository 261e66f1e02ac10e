// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetMaxUploadSize() int64
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// GroqConfig provides settings for the Groq chat-completions API.
type GroqConfig interface {
	GetGroqAPIKey() string
	GetGroqBaseURL() string
	GetGroqModel() string
	IsGroqEnabled() bool
}

// AdvisoryConfig provides settings for the batch advisory stage.
type AdvisoryConfig interface {
	GroqConfig
	GetAdvisoryTimeout() time.Duration
	GetAdvisoryMaxLeads() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	CORSAllowAll     bool
	CORSOrigins      []string
	CORSAllowCreds   bool
	MaxUploadSize    int64
	RateLimitRPS     float64
	RateLimitBurst   int
	GroqAPIKey       string
	GroqBaseURL      string
	GroqModel        string
	AdvisoryTimeout  time.Duration
	AdvisoryMaxLeads int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetMaxUploadSize() int64  { return c.MaxUploadSize }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// GroqConfig implementation
func (c *Config) GetGroqAPIKey() string  { return c.GroqAPIKey }
func (c *Config) GetGroqBaseURL() string { return c.GroqBaseURL }
func (c *Config) GetGroqModel() string   { return c.GroqModel }
func (c *Config) IsGroqEnabled() bool    { return c.GroqAPIKey != "" }

// AdvisoryConfig implementation
func (c *Config) GetAdvisoryTimeout() time.Duration { return c.AdvisoryTimeout }
func (c *Config) GetAdvisoryMaxLeads() int          { return c.AdvisoryMaxLeads }

// Load reads configuration from the environment, honoring a local .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174,http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		MaxUploadSize:    mustInt64(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		RateLimitRPS:     mustFloat(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst:   int(mustInt64(getEnv("RATE_LIMIT_BURST", "20"))),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:        getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		AdvisoryTimeout:  mustDuration(getEnv("ADVISORY_TIMEOUT", "120s")),
		AdvisoryMaxLeads: int(mustInt64(getEnv("ADVISORY_MAX_LEADS", "30"))),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
