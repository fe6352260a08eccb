package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"seabattle/internal/api"
	appconfig "seabattle/internal/config"
)

func newServeCmd() *cobra.Command {
	var (
		port        int
		storageType string
		redisURL    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			envCfg := appconfig.Load()
			if storageType != "" {
				envCfg.StorageType = storageType
			}
			if redisURL != "" {
				envCfg.RedisURL = redisURL
			}
			if port > 0 {
				envCfg.Port = port
			}
			if cfg.LogLevel != "" {
				envCfg.LogLevel = cfg.LogLevel
			}

			// Server logs as JSON to stdout
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: envCfg.SlogLevel(),
			}))
			slog.SetDefault(logger)

			app, err := buildApp(envCfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			router := api.NewRouter(api.RouterConfig{
				Logger:  logger,
				Matches: app.MatchService,
				Ranking: app.RankingService,
			})

			serverCfg := api.DefaultServerConfig()
			if envCfg.Port > 0 {
				serverCfg.Port = envCfg.Port
			}
			server := api.NewServer(router, serverCfg, logger)

			// Handle graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				select {
				case <-sigCh:
					logger.Info("shutdown signal received")
					cancel()
				case <-ctx.Done():
				}
			}()

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			logger.Info("server started", slog.String("addr", server.Addr()))

			// Wait for shutdown or error
			select {
			case err := <-errCh:
				if err != nil {
					logger.Error("server error", slog.String("error", err.Error()))
					return err
				}
			case <-ctx.Done():
				if err := server.Shutdown(context.Background()); err != nil {
					logger.Error("shutdown error", slog.String("error", err.Error()))
					return err
				}
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides SEABATTLE_PORT)")
	cmd.Flags().StringVar(&storageType, "storage", "", "Storage backend: memory, redis (overrides SEABATTLE_STORAGE_TYPE)")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL (overrides SEABATTLE_REDIS_URL)")

	return cmd
}
