package service

import (
	"context"

	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/repository"
)

// ChampionService exposes the champion directory. The directory is
// read-only through the API; writes happen through the bulk importer.
type ChampionService struct {
	championRepo repository.ChampionRepository
}

func NewChampionService(championRepo repository.ChampionRepository) *ChampionService {
	return &ChampionService{championRepo: championRepo}
}

// ListAll returns every champion sorted by French name ascending.
func (s *ChampionService) ListAll(ctx context.Context) ([]*domain.Champion, error) {
	return s.championRepo.GetAll(ctx)
}
