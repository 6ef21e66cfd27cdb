package service

import (
	"github.com/nathanlav/matchup-tracker/internal/config"
	"github.com/nathanlav/matchup-tracker/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Champion *ChampionService
	Matchup  *MatchupService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		Champion: NewChampionService(repos.Champion),
		Matchup:  NewMatchupService(repos.Matchup, repos.Champion),
	}
}
