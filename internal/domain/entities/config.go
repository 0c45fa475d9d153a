package entities

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// LogLevel represents logging verbosity levels
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config represents the complete application configuration
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Cover   CoverDefaults `toml:"cover"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// OutputConfig contains package output configuration
type OutputConfig struct {
	// Directory is where exported packages are written; empty means the
	// deck file's directory
	Directory string `toml:"directory"`

	// Extension is appended to the output file name
	Extension string `toml:"extension"`
}

// Validate validates output configuration
func (o OutputConfig) Validate() error {
	if o.Extension != "" && !strings.HasPrefix(o.Extension, ".") {
		return fmt.Errorf("extension must start with a dot: %q", o.Extension)
	}
	return nil
}

// CoverDefaults contains fallback values for the cover slide
type CoverDefaults struct {
	// Name is used when the deck frontmatter has no presenter name
	Name string `toml:"name"`

	// Date is used when the deck frontmatter has no date line
	Date string `toml:"date"`

	// ImagePath points at a default PNG background, optional
	ImagePath string `toml:"image_path"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	CORSOrigins     []string `toml:"cors_origins"`
}

// Validate validates server configuration
func (s ServerConfig) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	if s.Host != "" {
		if ip := net.ParseIP(s.Host); ip == nil {
			if _, err := net.LookupHost(s.Host); err != nil {
				return fmt.Errorf("invalid host: %w", err)
			}
		}
	}

	if s.ReadTimeout < 0 {
		return errors.New("read timeout must be non-negative")
	}

	if s.WriteTimeout < 0 {
		return errors.New("write timeout must be non-negative")
	}

	if s.ShutdownTimeout < 0 {
		return errors.New("shutdown timeout must be non-negative")
	}

	return nil
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `toml:"level"`
	Verbose bool   `toml:"verbose"`
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	}
	return fmt.Errorf("invalid log level: %q", l.Level)
}
