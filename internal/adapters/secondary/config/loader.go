package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/ports"
)

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct {
	globalPath string
	localName  string
}

var _ ports.ConfigLoader = (*TOMLLoader)(nil)

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	homeDir, _ := os.UserHomeDir()
	globalPath := filepath.Join(homeDir, ".config", "deckforge", "config.toml")

	return &TOMLLoader{
		globalPath: globalPath,
		localName:  "deckforge.toml",
	}
}

// LoadGlobal loads the global configuration file, creating it with
// defaults on first run
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	if _, err := os.Stat(l.globalPath); os.IsNotExist(err) {
		if err := l.createDefaults(l.globalPath); err != nil {
			return nil, fmt.Errorf("creating defaults: %w", err)
		}
	}

	return l.loadConfig(l.globalPath)
}

// LoadLocal loads a local configuration file from the specified
// directory; a missing local file is not an error
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	localPath := filepath.Join(dir, l.localName)

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return nil, nil
	}

	return l.loadConfig(localPath)
}

// GetGlobalPath returns the path to the global configuration file
func (l *TOMLLoader) GetGlobalPath() string {
	return l.globalPath
}

func (l *TOMLLoader) createDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 - path is controlled (global config path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "

	if err := encoder.Encode(GetDefaultConfig()); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}

	return nil
}

func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	var config entities.Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

// Merge layers configs left to right: later non-zero values win. It is
// used to apply local overrides on top of the global file on top of
// defaults.
func Merge(configs ...*entities.Config) *entities.Config {
	result := GetDefaultConfig()

	for _, config := range configs {
		if config == nil {
			continue
		}

		if config.Output.Directory != "" {
			result.Output.Directory = config.Output.Directory
		}
		if config.Output.Extension != "" {
			result.Output.Extension = config.Output.Extension
		}

		if config.Cover.Name != "" {
			result.Cover.Name = config.Cover.Name
		}
		if config.Cover.Date != "" {
			result.Cover.Date = config.Cover.Date
		}
		if config.Cover.ImagePath != "" {
			result.Cover.ImagePath = config.Cover.ImagePath
		}

		if config.Server.Host != "" {
			result.Server.Host = config.Server.Host
		}
		if config.Server.Port != 0 {
			result.Server.Port = config.Server.Port
		}
		if config.Server.ReadTimeout != 0 {
			result.Server.ReadTimeout = config.Server.ReadTimeout
		}
		if config.Server.WriteTimeout != 0 {
			result.Server.WriteTimeout = config.Server.WriteTimeout
		}
		if config.Server.ShutdownTimeout != 0 {
			result.Server.ShutdownTimeout = config.Server.ShutdownTimeout
		}
		if len(config.Server.CORSOrigins) > 0 {
			result.Server.CORSOrigins = config.Server.CORSOrigins
		}

		if config.Logging.Level != "" {
			result.Logging.Level = config.Logging.Level
		}
		if config.Logging.Verbose {
			result.Logging.Verbose = true
		}
	}

	return result
}
