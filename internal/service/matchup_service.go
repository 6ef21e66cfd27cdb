package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/repository"
	"gorm.io/gorm"
)

type MatchupService struct {
	matchupRepo  repository.MatchupRepository
	championRepo repository.ChampionRepository
	validate     *validator.Validate
}

func NewMatchupService(matchupRepo repository.MatchupRepository, championRepo repository.ChampionRepository) *MatchupService {
	return &MatchupService{
		matchupRepo:  matchupRepo,
		championRepo: championRepo,
		validate:     validator.New(),
	}
}

// CreateMatchupInput carries the optional fields as pointers so absent
// values fall back to schema defaults.
type CreateMatchupInput struct {
	ChampionPlayed string
	ChampionFaced  string
	Wins           *int
	Losses         *int
	Difficulty     *int
	Notes          *string
}

// UpdateMatchupInput applies only the fields that are present; the merged
// record goes through the same validation as create.
type UpdateMatchupInput struct {
	ChampionPlayed *string
	ChampionFaced  *string
	Wins           *int
	Losses         *int
	Difficulty     *int
	Notes          *string
}

// List returns matchups most recently updated first, with both champion
// references resolved inline. Dangling references stay nil.
func (s *MatchupService) List(ctx context.Context, filter domain.MatchupFilter) ([]*domain.Matchup, error) {
	matchups, err := s.matchupRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.resolveChampions(ctx, matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

func (s *MatchupService) Create(ctx context.Context, input CreateMatchupInput, ownerEmail string) (*domain.Matchup, error) {
	matchup := &domain.Matchup{
		ID:               uuid.New(),
		ChampionPlayedID: input.ChampionPlayed,
		ChampionFacedID:  input.ChampionFaced,
		Difficulty:       domain.MatchupDefaultDifficulty,
		UpdatedAt:        time.Now(),
		OwnerEmail:       ownerEmail,
	}
	applyOptional(matchup, input.Wins, input.Losses, input.Difficulty, input.Notes)

	if err := s.validateMatchup(matchup); err != nil {
		return nil, err
	}

	if err := s.matchupRepo.Create(ctx, matchup); err != nil {
		return nil, err
	}

	if err := s.resolveChampions(ctx, []*domain.Matchup{matchup}); err != nil {
		return nil, err
	}
	return matchup, nil
}

func (s *MatchupService) Update(ctx context.Context, id string, input UpdateMatchupInput) (*domain.Matchup, error) {
	matchupID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrMatchupNotFound
	}

	matchup, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchupNotFound
		}
		return nil, err
	}

	if input.ChampionPlayed != nil {
		matchup.ChampionPlayedID = *input.ChampionPlayed
	}
	if input.ChampionFaced != nil {
		matchup.ChampionFacedID = *input.ChampionFaced
	}
	applyOptional(matchup, input.Wins, input.Losses, input.Difficulty, input.Notes)
	matchup.UpdatedAt = time.Now()

	if err := s.validateMatchup(matchup); err != nil {
		return nil, err
	}

	if err := s.matchupRepo.Update(ctx, matchup); err != nil {
		return nil, err
	}

	if err := s.resolveChampions(ctx, []*domain.Matchup{matchup}); err != nil {
		return nil, err
	}
	return matchup, nil
}

// Delete succeeds whether or not the record exists. An id that is not even
// a UUID cannot name an existing record, so it deletes nothing and still
// reports success.
func (s *MatchupService) Delete(ctx context.Context, id string) error {
	matchupID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return s.matchupRepo.Delete(ctx, matchupID)
}

func applyOptional(m *domain.Matchup, wins, losses, difficulty *int, notes *string) {
	if wins != nil {
		m.Wins = *wins
	}
	if losses != nil {
		m.Losses = *losses
	}
	if difficulty != nil {
		m.Difficulty = *difficulty
	}
	if notes != nil {
		m.Notes = *notes
	}
}

func (s *MatchupService) validateMatchup(m *domain.Matchup) error {
	err := s.validate.Struct(m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, describeFieldError(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.StructField() {
	case "ChampionPlayedID":
		return "championJoue is required"
	case "ChampionFacedID":
		return "championAdverse is required"
	case "Wins":
		return "victoires must not be negative"
	case "Losses":
		return "defaites must not be negative"
	case "Difficulty":
		return "difficulte must be between 1 and 10"
	case "Notes":
		return fmt.Sprintf("notes must not exceed %d characters", domain.MatchupMaxNotesLength)
	}
	return fmt.Sprintf("%s is invalid", fe.StructField())
}

// resolveChampions performs the read-time join from champion ids to
// champion documents in a single batch query.
func (s *MatchupService) resolveChampions(ctx context.Context, matchups []*domain.Matchup) error {
	if len(matchups) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matchups)*2)
	ids := make([]string, 0, len(matchups)*2)
	for _, m := range matchups {
		for _, id := range []string{m.ChampionPlayedID, m.ChampionFacedID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	champions, err := s.championRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, m := range matchups {
		m.ChampionPlayed = champions[m.ChampionPlayedID]
		m.ChampionFaced = champions[m.ChampionFacedID]
	}
	return nil
}
