package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/nathanlav/matchup-tracker/internal/domain"
	"gorm.io/gorm"
)

type matchupRepository struct {
	db *gorm.DB
}

func NewMatchupRepository(db *gorm.DB) *matchupRepository {
	return &matchupRepository{db: db}
}

func (r *matchupRepository) Create(ctx context.Context, matchup *domain.Matchup) error {
	return r.db.WithContext(ctx).Create(matchup).Error
}

func (r *matchupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matchup, error) {
	var matchup domain.Matchup
	err := r.db.WithContext(ctx).First(&matchup, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &matchup, nil
}

func (r *matchupRepository) List(ctx context.Context, filter domain.MatchupFilter) ([]*domain.Matchup, error) {
	query := r.db.WithContext(ctx)

	if filter.ChampionPlayed != "" {
		query = query.Where("champion_played_id = ?", filter.ChampionPlayed)
	}
	if filter.ChampionFaced != "" {
		query = query.Where("champion_faced_id = ?", filter.ChampionFaced)
	}

	var matchups []*domain.Matchup
	err := query.Order("updated_at DESC").Find(&matchups).Error
	if err != nil {
		return nil, err
	}
	return matchups, nil
}

func (r *matchupRepository) Update(ctx context.Context, matchup *domain.Matchup) error {
	return r.db.WithContext(ctx).Save(matchup).Error
}

// Delete is idempotent: removing an id that does not exist is not an error.
func (r *matchupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Matchup{}, "id = ?", id).Error
}
