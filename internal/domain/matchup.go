package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MatchupDefaultDifficulty = 5
	MatchupMaxNotesLength    = 2000
)

// Matchup records one user's personal statistics playing one champion
// against another. Champion references are weak: plain identifier columns
// with no foreign key, resolved into ChampionPlayed/ChampionFaced at read
// time. A champion deleted by a re-import leaves the reference dangling and
// the resolved field null.
type Matchup struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ChampionPlayedID string    `json:"-" gorm:"index;not null" validate:"required"`
	ChampionFacedID  string    `json:"-" gorm:"index;not null" validate:"required"`
	Wins             int       `json:"victoires" gorm:"not null;default:0" validate:"gte=0"`
	Losses           int       `json:"defaites" gorm:"not null;default:0" validate:"gte=0"`
	Difficulty       int       `json:"difficulte" gorm:"not null;default:5" validate:"gte=1,lte=10"`
	Notes            string    `json:"notes" gorm:"size:2000" validate:"max=2000"`
	UpdatedAt        time.Time `json:"dateMAJ"`
	OwnerEmail       string    `json:"utilisateur" gorm:"not null"`

	// Resolved at read time, never persisted.
	ChampionPlayed *Champion `json:"championJoue" gorm:"-"`
	ChampionFaced  *Champion `json:"championAdverse" gorm:"-"`
}

func (Matchup) TableName() string {
	return "matchups"
}

// MatchupFilter constrains List to exact matches on either champion
// reference. Empty fields are ignored.
type MatchupFilter struct {
	ChampionPlayed string
	ChampionFaced  string
}
