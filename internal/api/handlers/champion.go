package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/service"
)

type ChampionHandler struct {
	championService *service.ChampionService
	log             zerolog.Logger
}

func NewChampionHandler(championService *service.ChampionService, log zerolog.Logger) *ChampionHandler {
	return &ChampionHandler{championService: championService, log: log}
}

type championListResponse struct {
	Message string             `json:"message"`
	Total   int                `json:"total"`
	Data    []*domain.Champion `json:"data"`
}

func (h *ChampionHandler) List(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list champions failed")
		writeError(w, http.StatusInternalServerError, "failed to list champions", err)
		return
	}
	if champions == nil {
		champions = []*domain.Champion{}
	}

	writeJSON(w, http.StatusOK, championListResponse{
		Message: "champions retrieved",
		Total:   len(champions),
		Data:    champions,
	})
}
