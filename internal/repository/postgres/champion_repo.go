package postgres

import (
	"context"

	"github.com/nathanlav/matchup-tracker/internal/domain"
	"gorm.io/gorm"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

// GetByIDs returns the champions that exist keyed by id. Missing ids are
// simply absent from the map so callers can render dangling references as
// unresolved.
func (r *championRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Champion, error) {
	result := make(map[string]*domain.Champion, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&champions).Error
	if err != nil {
		return nil, err
	}

	for _, c := range champions {
		result[c.ID] = c
	}
	return result, nil
}

// ReplaceAll swaps the whole directory for a fresh import.
func (r *championRepository) ReplaceAll(ctx context.Context, champions []*domain.Champion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Champion{}).Error; err != nil {
			return err
		}
		if len(champions) == 0 {
			return nil
		}
		return tx.Create(champions).Error
	})
}
