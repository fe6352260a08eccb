package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"seabattle/internal/api/request"
	"seabattle/internal/api/response"
	"seabattle/internal/model"
	"seabattle/internal/services/match"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	matches *match.Service
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches *match.Service) *MatchHandler {
	return &MatchHandler{
		matches: matches,
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	view, err := h.matches.Create(r.Context(), req.PlayerName, req.MatchConfig())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchStateFromView(view))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	view, err := h.matches.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchStateFromView(view))
}

// Shoot handles POST /api/v1/matches/{id}/shots
func (h *MatchHandler) Shoot(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	var req request.ShotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	outcome, err := h.matches.Shoot(r.Context(), id, req.Coord)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ShotResultFromOutcome(outcome))
}

// Abandon handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	if err := h.matches.Abandon(id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
