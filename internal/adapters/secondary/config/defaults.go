package config

import (
	"os"
	"strconv"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment
// overrides applied
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Output: entities.OutputConfig{
			Directory: getEnvOrDefault("DECKFORGE_OUTPUT_DIR", ""),
			Extension: ".pptx",
		},
		Cover: entities.CoverDefaults{
			Name:      getEnvOrDefault("DECKFORGE_COVER_NAME", ""),
			Date:      getEnvOrDefault("DECKFORGE_COVER_DATE", ""),
			ImagePath: getEnvOrDefault("DECKFORGE_COVER_IMAGE", ""),
		},
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("DECKFORGE_HOST", "localhost"),
			Port:            getEnvIntOrDefault("DECKFORGE_PORT", 8421),
			ReadTimeout:     getEnvIntOrDefault("DECKFORGE_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("DECKFORGE_WRITE_TIMEOUT", 60),
			ShutdownTimeout: getEnvIntOrDefault("DECKFORGE_SHUTDOWN_TIMEOUT", 5),
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("DECKFORGE_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("DECKFORGE_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
