package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/nathanlav/matchup-tracker/internal/api/middleware"
	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/service"
)

type MatchupHandler struct {
	matchupService *service.MatchupService
	log            zerolog.Logger
}

func NewMatchupHandler(matchupService *service.MatchupService, log zerolog.Logger) *MatchupHandler {
	return &MatchupHandler{matchupService: matchupService, log: log}
}

type createMatchupRequest struct {
	ChampionPlayed string  `json:"championJoue"`
	ChampionFaced  string  `json:"championAdverse"`
	Wins           *int    `json:"victoires"`
	Losses         *int    `json:"defaites"`
	Difficulty     *int    `json:"difficulte"`
	Notes          *string `json:"notes"`
}

type updateMatchupRequest struct {
	ChampionPlayed *string `json:"championJoue"`
	ChampionFaced  *string `json:"championAdverse"`
	Wins           *int    `json:"victoires"`
	Losses         *int    `json:"defaites"`
	Difficulty     *int    `json:"difficulte"`
	Notes          *string `json:"notes"`
}

type matchupListResponse struct {
	Message string            `json:"message"`
	Total   int               `json:"total"`
	Data    []*domain.Matchup `json:"data"`
}

type matchupResponse struct {
	Message string          `json:"message"`
	Data    *domain.Matchup `json:"data"`
}

// List is public. Optional championJoue/championAdverse query parameters
// constrain exact matches on the corresponding reference.
func (h *MatchupHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.MatchupFilter{
		ChampionPlayed: r.URL.Query().Get("championJoue"),
		ChampionFaced:  r.URL.Query().Get("championAdverse"),
	}

	matchups, err := h.matchupService.List(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list matchups failed")
		writeError(w, http.StatusInternalServerError, "failed to list matchups", err)
		return
	}
	if matchups == nil {
		matchups = []*domain.Matchup{}
	}

	writeJSON(w, http.StatusOK, matchupListResponse{
		Message: "matchups retrieved",
		Total:   len(matchups),
		Data:    matchups,
	})
}

func (h *MatchupHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token", nil)
		return
	}

	var req createMatchupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	matchup, err := h.matchupService.Create(r.Context(), service.CreateMatchupInput{
		ChampionPlayed: req.ChampionPlayed,
		ChampionFaced:  req.ChampionFaced,
		Wins:           req.Wins,
		Losses:         req.Losses,
		Difficulty:     req.Difficulty,
		Notes:          req.Notes,
	}, identity.Email)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "invalid matchup", err)
			return
		}
		h.log.Error().Err(err).Msg("create matchup failed")
		writeError(w, http.StatusInternalServerError, "failed to create matchup", err)
		return
	}

	writeJSON(w, http.StatusCreated, matchupResponse{
		Message: "matchup created",
		Data:    matchup,
	})
}

func (h *MatchupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateMatchupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	matchup, err := h.matchupService.Update(r.Context(), id, service.UpdateMatchupInput{
		ChampionPlayed: req.ChampionPlayed,
		ChampionFaced:  req.ChampionFaced,
		Wins:           req.Wins,
		Losses:         req.Losses,
		Difficulty:     req.Difficulty,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMatchupNotFound):
			writeError(w, http.StatusNotFound, "matchup not found", err)
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "invalid matchup", err)
		default:
			h.log.Error().Err(err).Str("id", id).Msg("update matchup failed")
			writeError(w, http.StatusInternalServerError, "failed to update matchup", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, matchupResponse{
		Message: "matchup updated",
		Data:    matchup,
	})
}

func (h *MatchupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.matchupService.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("delete matchup failed")
		writeError(w, http.StatusInternalServerError, "failed to delete matchup", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "matchup deleted"})
}
