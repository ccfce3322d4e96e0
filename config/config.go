package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort         string        `mapstructure:"APP_PORT"`
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	MaxUploadBytes  int64         `mapstructure:"MAX_UPLOAD_BYTES"`

	// Gemini configuration.
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	DefaultModel      string        `mapstructure:"DEFAULT_MODEL"`
	GeminiJSONMode    bool          `mapstructure:"GEMINI_JSON_MODE"`
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"`

	// CORS configuration.
	CORSAllowedOrigins   []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	CORSAllowedMethods   []string `mapstructure:"CORS_ALLOWED_METHODS"`
	CORSAllowedHeaders   []string `mapstructure:"CORS_ALLOWED_HEADERS"`
	CORSAllowCredentials bool     `mapstructure:"CORS_ALLOW_CREDENTIALS"`

	// Tracing configuration.
	OtelEnabled     bool    `mapstructure:"OTEL_ENABLED"`
	OtelServiceName string  `mapstructure:"OTEL_SERVICE_NAME"`
	OtelEndpoint    string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure    bool    `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OtelSampleRatio float64 `mapstructure:"OTEL_SAMPLER_RATIO"`
}

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")

// AppConfig is the configuration loaded at startup.
var AppConfig Config

// LoadConfig reads config.yaml (if any) and the environment, applies defaults
// and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	// Set default values. Every key must have a default so Unmarshal sees env overrides.
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("MAX_UPLOAD_BYTES", 32<<20)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("DEFAULT_MODEL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_JSON_MODE", false)
	v.SetDefault("GENERATION_TIMEOUT", "120s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"})
	v.SetDefault("CORS_ALLOW_CREDENTIALS", false)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "timetabler")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SAMPLER_RATIO", 1.0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return &cfg, nil
}

func (c *Config) normalize() {
	c.GeminiAPIKey = strings.TrimSpace(c.GeminiAPIKey)
	c.DefaultModel = strings.TrimSpace(c.DefaultModel)
	c.CORSAllowedOrigins = cleanList(c.CORSAllowedOrigins)
	c.CORSAllowedMethods = cleanList(c.CORSAllowedMethods)
	c.CORSAllowedHeaders = cleanList(c.CORSAllowedHeaders)
	if c.OtelSampleRatio < 0 {
		c.OtelSampleRatio = 0
	}
	if c.OtelSampleRatio > 1 {
		c.OtelSampleRatio = 1
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.DefaultModel == "" {
		return errors.New("DEFAULT_MODEL must not be empty")
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", c.GenerationTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// AllowsAllOrigins reports whether CORS is left open to every origin.
func (c *Config) AllowsAllOrigins() bool {
	if len(c.CORSAllowedOrigins) == 0 {
		return true
	}
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		// a single env value may still carry commas when read from a yaml scalar
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
