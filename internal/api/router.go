package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"seabattle/internal/api/handler"
	"seabattle/internal/api/middleware"
	"seabattle/internal/services/match"
	"seabattle/internal/services/ranking"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Matches *match.Service
	Ranking *ranking.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	matchHandler := handler.NewMatchHandler(cfg.Matches)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.Ranking)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Match routes
	matches := api.PathPrefix("/matches").Subrouter()
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/shots", matchHandler.Shoot).Methods(http.MethodPost)
	matches.HandleFunc("/{id}", matchHandler.Abandon).Methods(http.MethodDelete)

	// Standings routes
	api.HandleFunc("/leaderboard", leaderboardHandler.Standings).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/stats", leaderboardHandler.PlayerStats).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
