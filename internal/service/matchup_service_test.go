package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/repository/postgres"
	"github.com/nathanlav/matchup-tracker/internal/service"
	"github.com/nathanlav/matchup-tracker/internal/testutil"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newMatchupService(t *testing.T) (*service.MatchupService, *testutil.TestDB) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	return service.NewMatchupService(repos.Matchup, repos.Champion), testDB
}

func TestMatchupService_Create(t *testing.T) {
	svc, testDB := newMatchupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.CreateMatchupInput
		wantErr error
		check   func(*testing.T, *domain.Matchup)
	}{
		{
			name:  "defaults applied",
			input: service.CreateMatchupInput{ChampionPlayed: "Aatrox", ChampionFaced: "Ahri"},
			check: func(t *testing.T, m *domain.Matchup) {
				assert.Equal(t, 0, m.Wins)
				assert.Equal(t, 0, m.Losses)
				assert.Equal(t, domain.MatchupDefaultDifficulty, m.Difficulty)
				assert.Empty(t, m.Notes)
				assert.Equal(t, "owner@example.com", m.OwnerEmail)
			},
		},
		{
			name: "explicit values kept",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox",
				ChampionFaced:  "Ahri",
				Wins:           intPtr(7),
				Losses:         intPtr(3),
				Difficulty:     intPtr(9),
				Notes:          strPtr("ban early"),
			},
			check: func(t *testing.T, m *domain.Matchup) {
				assert.Equal(t, 7, m.Wins)
				assert.Equal(t, 3, m.Losses)
				assert.Equal(t, 9, m.Difficulty)
				assert.Equal(t, "ban early", m.Notes)
			},
		},
		{
			name:  "same champion on both sides is allowed",
			input: service.CreateMatchupInput{ChampionPlayed: "Aatrox", ChampionFaced: "Aatrox"},
			check: func(t *testing.T, m *domain.Matchup) {
				assert.Equal(t, m.ChampionPlayedID, m.ChampionFacedID)
			},
		},
		{
			name:    "missing champion played",
			input:   service.CreateMatchupInput{ChampionFaced: "Ahri"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing champion faced",
			input:   service.CreateMatchupInput{ChampionPlayed: "Aatrox"},
			wantErr: domain.ErrValidation,
		},
		{
			name: "negative wins",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox", ChampionFaced: "Ahri", Wins: intPtr(-1),
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "negative losses",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox", ChampionFaced: "Ahri", Losses: intPtr(-5),
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "difficulty below range",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox", ChampionFaced: "Ahri", Difficulty: intPtr(0),
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "difficulty above range",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox", ChampionFaced: "Ahri", Difficulty: intPtr(11),
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "notes too long",
			input: service.CreateMatchupInput{
				ChampionPlayed: "Aatrox", ChampionFaced: "Ahri",
				Notes: strPtr(strings.Repeat("x", domain.MatchupMaxNotesLength+1)),
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			matchup, err := svc.Create(ctx, tt.input, "owner@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, matchup.ID)
			assert.False(t, matchup.UpdatedAt.IsZero())
			if tt.check != nil {
				tt.check(t, matchup)
			}
		})
	}
}

func TestMatchupService_Update(t *testing.T) {
	svc, testDB := newMatchupService(t)
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		testDB.Truncate(t)
		existing := testutil.NewMatchupBuilder().
			WithChampions("Aatrox", "Ahri").
			WithRecord(4, 2).
			WithDifficulty(7).
			WithNotes("respect level 6").
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, existing.ID.String(), service.UpdateMatchupInput{
			Wins: intPtr(5),
		})
		require.NoError(t, err)

		assert.Equal(t, 5, updated.Wins)
		assert.Equal(t, 2, updated.Losses)
		assert.Equal(t, 7, updated.Difficulty)
		assert.Equal(t, "respect level 6", updated.Notes)
		assert.Equal(t, "Aatrox", updated.ChampionPlayedID)
	})

	t.Run("update bumps dateMAJ", func(t *testing.T) {
		testDB.Truncate(t)
		existing := testutil.NewMatchupBuilder().
			WithUpdatedAt(time.Now().Add(-time.Hour)).
			Build(t, testDB.DB)

		updated, err := svc.Update(ctx, existing.ID.String(), service.UpdateMatchupInput{
			Losses: intPtr(1),
		})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(existing.UpdatedAt))
	})

	t.Run("update re-validates bounds", func(t *testing.T) {
		testDB.Truncate(t)
		existing := testutil.NewMatchupBuilder().Build(t, testDB.DB)

		_, err := svc.Update(ctx, existing.ID.String(), service.UpdateMatchupInput{
			Difficulty: intPtr(42),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		testDB.Truncate(t)
		_, err := svc.Update(ctx, "7b9230fd-5de0-4b3e-a3a5-3f0c0e6f2f11", service.UpdateMatchupInput{
			Wins: intPtr(1),
		})
		assert.ErrorIs(t, err, domain.ErrMatchupNotFound)
	})

	t.Run("id that is not a uuid", func(t *testing.T) {
		testDB.Truncate(t)
		_, err := svc.Update(ctx, "definitely-not-a-uuid", service.UpdateMatchupInput{
			Wins: intPtr(1),
		})
		assert.ErrorIs(t, err, domain.ErrMatchupNotFound)
	})
}

func TestMatchupService_Delete(t *testing.T) {
	svc, testDB := newMatchupService(t)
	ctx := context.Background()

	t.Run("removes an existing matchup", func(t *testing.T) {
		testDB.Truncate(t)
		existing := testutil.NewMatchupBuilder().Build(t, testDB.DB)

		require.NoError(t, svc.Delete(ctx, existing.ID.String()))

		matchups, err := svc.List(ctx, domain.MatchupFilter{})
		require.NoError(t, err)
		assert.Empty(t, matchups)
	})

	t.Run("deleting an unknown id succeeds", func(t *testing.T) {
		testDB.Truncate(t)
		assert.NoError(t, svc.Delete(ctx, "7b9230fd-5de0-4b3e-a3a5-3f0c0e6f2f11"))
	})

	t.Run("deleting an unparseable id succeeds", func(t *testing.T) {
		testDB.Truncate(t)
		assert.NoError(t, svc.Delete(ctx, "not-a-uuid"))
	})

	t.Run("deleting twice succeeds", func(t *testing.T) {
		testDB.Truncate(t)
		existing := testutil.NewMatchupBuilder().Build(t, testDB.DB)
		require.NoError(t, svc.Delete(ctx, existing.ID.String()))
		assert.NoError(t, svc.Delete(ctx, existing.ID.String()))
	})
}

func TestMatchupService_List_ResolvesChampions(t *testing.T) {
	svc, testDB := newMatchupService(t)
	ctx := context.Background()

	aatrox := testutil.NewChampionBuilder().WithID("Aatrox").WithName("Aatrox").Build(t, testDB.DB)
	ahri := testutil.NewChampionBuilder().WithID("Ahri").WithName("Ahri").Build(t, testDB.DB)

	testutil.NewMatchupBuilder().WithChampions(aatrox.ID, ahri.ID).Build(t, testDB.DB)
	testutil.NewMatchupBuilder().WithChampions(aatrox.ID, "Deleted").Build(t, testDB.DB)

	matchups, err := svc.List(ctx, domain.MatchupFilter{})
	require.NoError(t, err)
	require.Len(t, matchups, 2)

	for _, m := range matchups {
		require.NotNil(t, m.ChampionPlayed)
		assert.Equal(t, "Aatrox", m.ChampionPlayed.Name)

		if m.ChampionFacedID == "Deleted" {
			// Dangling reference renders as unresolved, not an error
			assert.Nil(t, m.ChampionFaced)
		} else {
			require.NotNil(t, m.ChampionFaced)
			assert.Equal(t, "Ahri", m.ChampionFaced.Name)
		}
	}
}
