// Package config loads service configuration from an optional YAML file with
// environment-variable overrides, so credentials never have to live on disk.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	// Generator selects the strategy behind /v1/chat/completions:
	// "mock" (deterministic, hash-based) or "fallback" (canned replies with
	// an optional upstream attempt).
	Generator string `yaml:"generator" env:"GENERATOR_STRATEGY"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
}

// ServerConfig configures the HTTP surface
type ServerConfig struct {
	Port    int      `yaml:"port" env:"PORT"`
	APIKeys []string `yaml:"api_keys" env:"API_KEYS" envSeparator:","`
	// StreamDelayMS paces chunk emission on the streaming path. This is
	// response pacing, not a correctness requirement; tests set it to 0.
	StreamDelayMS int `yaml:"stream_delay_ms" env:"STREAM_DELAY_MS"`
}

// UpstreamConfig configures the optional real model provider. A present
// APIKey switches the fallback generator into attempt-then-degrade mode;
// an absent one forces pure fallback responses.
type UpstreamConfig struct {
	APIKey         string `yaml:"api_key" env:"UPSTREAM_API_KEY"`
	BaseURL        string `yaml:"base_url" env:"UPSTREAM_BASE_URL"`
	Model          string `yaml:"model" env:"UPSTREAM_MODEL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"UPSTREAM_TIMEOUT_SECONDS"`
}

// Default returns the configuration used when no file or environment
// overrides are present. The API keys are illustrative placeholders.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          8080,
			APIKeys:       []string{"sk-test123", "sk-prod456"},
			StreamDelayMS: 100,
		},
		Upstream: UpstreamConfig{
			Model:          "gpt-3.5-turbo",
			TimeoutSeconds: 30,
		},
		Generator: "mock",
		LogLevel:  "info",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// non-empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// OPENAI_API_KEY is recognized as an alternative credential name.
	if cfg.Upstream.APIKey == "" {
		cfg.Upstream.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, nil
}

// UpstreamEnabled reports whether a real-provider credential is configured
func (c *Config) UpstreamEnabled() bool {
	return c.Upstream.APIKey != ""
}

// UpstreamTimeout returns the bounded timeout for the single upstream attempt
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}

// StreamDelay returns the pacing delay between stream chunks
func (c *Config) StreamDelay() time.Duration {
	return time.Duration(c.Server.StreamDelayMS) * time.Millisecond
}
