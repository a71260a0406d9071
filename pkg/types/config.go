package types

import (
	"errors"
	"time"
)

// Config holds backend selection and runtime parameters for the hero store.
type Config struct {
	Backend  string        `json:"backend" yaml:"backend" mapstructure:"backend"`
	Latency  time.Duration `json:"latency" yaml:"latency" mapstructure:"latency"`
	PageSize int           `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Defaults applied when a value is not configured.
const (
	DefaultBackend  = BackendMemory
	DefaultLatency  = time.Second
	DefaultPageSize = 5
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLatencyInvalid  = errors.New("latency must not be negative")
	ErrPageSizeInvalid = errors.New("page size must be positive")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		Backend:  DefaultBackend,
		Latency:  DefaultLatency,
		PageSize: DefaultPageSize,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty log level is accepted and means info.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Latency < 0 {
		return ErrLatencyInvalid
	}
	if c.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
