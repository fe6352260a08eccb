package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"seabattle/internal/api/response"
	"seabattle/internal/services/ranking"
)

// LeaderboardHandler handles standings and player stats endpoints
type LeaderboardHandler struct {
	ranking *ranking.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(ranking *ranking.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		ranking: ranking,
	}
}

// Standings handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	standings, err := h.ranking.Standings(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromStats(standings))
}

// PlayerStats handles GET /api/v1/players/{name}/stats
func (h *LeaderboardHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	stats, err := h.ranking.PlayerStats(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	matches, err := h.ranking.MatchesForPlayer(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(stats, matches))
}
