package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the SlimTimer client
type Config struct {
	Service     ServiceConfig
	HTTP        HTTPConfig
	Application ApplicationConfig
}

// ServiceConfig holds the service endpoint and credential configuration
type ServiceConfig struct {
	BaseURL string `env:"ST_BASE_URL"`
	APIKey  string `env:"ST_API_KEY"`
	Email   string `env:"ST_EMAIL"`
}

// HTTPConfig holds transport-level configuration
type HTTPConfig struct {
	Timeout time.Duration `env:"ST_HTTP_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"ST_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL: "http://slimtimer.com",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if baseURL := os.Getenv("ST_BASE_URL"); baseURL != "" {
		c.Service.BaseURL = baseURL
	}
	if apiKey := os.Getenv("ST_API_KEY"); apiKey != "" {
		c.Service.APIKey = apiKey
	}
	if email := os.Getenv("ST_EMAIL"); email != "" {
		c.Service.Email = email
	}
	if timeout := os.Getenv("ST_HTTP_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			c.HTTP.Timeout = parsed
		}
	}
	if verbose := os.Getenv("ST_VERBOSE"); verbose != "" {
		if parsed, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = parsed
		}
	}
	return nil
}

// GetHTTPTimeout returns the transport timeout
func (c *Config) GetHTTPTimeout() time.Duration {
	return c.HTTP.Timeout
}
