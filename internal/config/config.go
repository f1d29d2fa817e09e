// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server  ServerConfig
	Census  CensusConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// CensusConfig says which census files to serve.
type CensusConfig struct {
	// Country selects the loader: india, russia, canada (default: india)
	Country string `env:"CENSUS_COUNTRY" default:"india"`

	// DataDir holds the datasets under their conventional names (default: data)
	DataDir string `env:"CENSUS_DATA_DIR" default:"data"`

	// PopulationPath overrides the state census file location
	PopulationPath string `env:"CENSUS_POPULATION_PATH"`

	// StateCodePath overrides the state code file location
	StateCodePath string `env:"CENSUS_STATE_CODE_PATH"`

	// PopulationHeader overrides the expected state census header
	PopulationHeader string `env:"CENSUS_POPULATION_HEADER"`

	// StateCodeHeader overrides the expected state code header
	StateCodeHeader string `env:"CENSUS_STATE_CODE_HEADER"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
