package cli

import (
	"fmt"
	"log/slog"
	"os"

	appconfig "seabattle/internal/config"
	"seabattle/internal/factory"
	redisstorage "seabattle/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	LogLevel  string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SEABATTLE_SERVER", "http://localhost:8080"),
		Output:    "text",
		LogLevel:  os.Getenv("SEABATTLE_LOG_LEVEL"),
	}
}

// newLogger builds the stderr logger for interactive commands. With no
// level configured they stay quiet so the match output is clean.
func newLogger(level string) *slog.Logger {
	lv := slog.LevelWarn
	if level != "" {
		lv = appconfig.ParseLevel(level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

// buildApp wires an application against the configured storage backend
func buildApp(envCfg appconfig.Config, logger *slog.Logger) (*factory.App, error) {
	fc := factory.Config{
		Logger:      logger,
		StorageType: envCfg.StorageType,
	}

	if fc.StorageType == factory.StorageTypeRedis {
		if envCfg.RedisURL == "" {
			return nil, fmt.Errorf("SEABATTLE_REDIS_URL required when storage type is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = envCfg.RedisURL
		fc.RedisConfig = &redisCfg
	}

	return factory.New(fc)
}

// newLocalApp wires an application from the environment for the
// commands that run matches in-process
func newLocalApp(logger *slog.Logger) (*factory.App, error) {
	return buildApp(appconfig.Load(), logger)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
