package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nathanlav/matchup-tracker/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ChampionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Champion, error)
	ReplaceAll(ctx context.Context, champions []*domain.Champion) error
}

type MatchupRepository interface {
	Create(ctx context.Context, matchup *domain.Matchup) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matchup, error)
	List(ctx context.Context, filter domain.MatchupFilter) ([]*domain.Matchup, error)
	Update(ctx context.Context, matchup *domain.Matchup) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User     UserRepository
	Champion ChampionRepository
	Matchup  MatchupRepository
}
