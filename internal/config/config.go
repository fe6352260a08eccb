package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds server configuration read from the environment
type Config struct {
	StorageType string
	RedisURL    string
	Port        int
	LogLevel    string
}

// Load reads configuration from a .env file if one exists, falling
// back to the process environment. A missing or unparseable port
// leaves Port at zero, which callers treat as "use the default".
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	port := 0
	if raw := os.Getenv("SEABATTLE_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Ignoring unparseable SEABATTLE_PORT %q", raw)
		} else {
			port = parsed
		}
	}

	return Config{
		StorageType: os.Getenv("SEABATTLE_STORAGE_TYPE"),
		RedisURL:    os.Getenv("SEABATTLE_REDIS_URL"),
		Port:        port,
		LogLevel:    os.Getenv("SEABATTLE_LOG_LEVEL"),
	}
}

// SlogLevel maps the configured log level to slog, defaulting to info
func (c Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel maps a level name to slog, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
