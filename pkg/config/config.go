// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vendascope/vendascope/pkg/observability"
)

// Config holds all service configuration
type Config struct {
	Server        ServerConfig
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Health/metrics server (separate port for k8s probes)
	HealthPort string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool

	OTelEnabled        bool
	OTelEndpoint       string
	OTelServiceName    string
	OTelServiceVersion string
	OTelInsecure       bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("VENDASCOPE_HOST", "0.0.0.0"),
		Port:            getEnv("VENDASCOPE_PORT", "8080"),
		ReadTimeout:     getEnvDuration("VENDASCOPE_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("VENDASCOPE_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("VENDASCOPE_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("VENDASCOPE_SHUTDOWN_TIMEOUT", 30*time.Second),
		HealthPort:      getEnv("VENDASCOPE_HEALTH_PORT", "9090"),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:           observability.ParseLogLevel(getEnv("VENDASCOPE_LOG_LEVEL", "info")),
		MetricsEnabled:     getEnvBool("VENDASCOPE_METRICS_ENABLED", true),
		OTelEnabled:        getEnvBool("VENDASCOPE_OTEL_ENABLED", false),
		OTelEndpoint:       getEnv("VENDASCOPE_OTEL_ENDPOINT", "localhost:4317"),
		OTelServiceName:    getEnv("VENDASCOPE_OTEL_SERVICE_NAME", "vendascope-authz"),
		OTelServiceVersion: getEnv("VENDASCOPE_OTEL_SERVICE_VERSION", "1.0.0"),
		OTelInsecure:       getEnvBool("VENDASCOPE_OTEL_INSECURE", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.HealthPort == "" {
		return fmt.Errorf("health port is required")
	}
	if c.Server.Port == c.Server.HealthPort {
		return fmt.Errorf("server port and health port must be different")
	}
	if c.Observability.OTelEnabled && c.Observability.OTelEndpoint == "" {
		return fmt.Errorf("otel endpoint is required when otel is enabled")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return strings.ToLower(value) == "true"
	}
	return fallback
}
