package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nathanlav/matchup-tracker/internal/domain"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        domain.NormalizeEmail(b.email),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// BuildAndAuthenticate registers the user through the API and returns the
// user and a bearer token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	resp, err := http.Post(ts.URL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	return &domain.User{ID: userID, Email: authResp.User.Email}, authResp.Token
}

// ChampionBuilder creates test champions with a builder pattern
type ChampionBuilder struct {
	id     string
	name   string
	nameEN string
	image  string
	role   string
	tags   []string
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	id := fmt.Sprintf("Champ%s", uuid.New().String()[:8])
	return &ChampionBuilder{
		id:     id,
		name:   id,
		nameEN: id,
		image:  fmt.Sprintf("https://example.com/%s.png", id),
		role:   "Fighter",
		tags:   []string{"Fighter"},
	}
}

func (b *ChampionBuilder) WithID(id string) *ChampionBuilder {
	b.id = id
	return b
}

func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.name = name
	return b
}

func (b *ChampionBuilder) WithNameEN(name string) *ChampionBuilder {
	b.nameEN = name
	return b
}

func (b *ChampionBuilder) WithRole(role string) *ChampionBuilder {
	b.role = role
	return b
}

func (b *ChampionBuilder) WithTags(tags []string) *ChampionBuilder {
	b.tags = tags
	return b
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	tagsJSON, _ := json.Marshal(b.tags)
	champion := &domain.Champion{
		ID:        b.id,
		Name:      b.name,
		NameEN:    b.nameEN,
		ImageURL:  b.image,
		Role:      b.role,
		Tags:      datatypes.JSON(tagsJSON),
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}

	return champion
}

// SeedChampions inserts n champions with predictable names
func SeedChampions(t *testing.T, db *gorm.DB, n int) []*domain.Champion {
	t.Helper()

	champions := make([]*domain.Champion, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Champion%02d", i)
		champions = append(champions, NewChampionBuilder().
			WithID(name).
			WithName(name).
			Build(t, db))
	}
	return champions
}

// MatchupBuilder creates test matchups with a builder pattern
type MatchupBuilder struct {
	played     string
	faced      string
	wins       int
	losses     int
	difficulty int
	notes      string
	owner      string
	updatedAt  time.Time
}

// NewMatchupBuilder creates a new MatchupBuilder with default values
func NewMatchupBuilder() *MatchupBuilder {
	return &MatchupBuilder{
		played:     "Aatrox",
		faced:      "Ahri",
		difficulty: domain.MatchupDefaultDifficulty,
		owner:      "testuser@example.com",
		updatedAt:  time.Now(),
	}
}

func (b *MatchupBuilder) WithChampions(played, faced string) *MatchupBuilder {
	b.played = played
	b.faced = faced
	return b
}

func (b *MatchupBuilder) WithRecord(wins, losses int) *MatchupBuilder {
	b.wins = wins
	b.losses = losses
	return b
}

func (b *MatchupBuilder) WithDifficulty(difficulty int) *MatchupBuilder {
	b.difficulty = difficulty
	return b
}

func (b *MatchupBuilder) WithNotes(notes string) *MatchupBuilder {
	b.notes = notes
	return b
}

func (b *MatchupBuilder) WithOwner(owner string) *MatchupBuilder {
	b.owner = owner
	return b
}

func (b *MatchupBuilder) WithUpdatedAt(at time.Time) *MatchupBuilder {
	b.updatedAt = at
	return b
}

// Build creates the matchup in the database
func (b *MatchupBuilder) Build(t *testing.T, db *gorm.DB) *domain.Matchup {
	t.Helper()

	matchup := &domain.Matchup{
		ID:               uuid.New(),
		ChampionPlayedID: b.played,
		ChampionFacedID:  b.faced,
		Wins:             b.wins,
		Losses:           b.losses,
		Difficulty:       b.difficulty,
		Notes:            b.notes,
		UpdatedAt:        b.updatedAt,
		OwnerEmail:       b.owner,
	}

	if err := db.Create(matchup).Error; err != nil {
		t.Fatalf("failed to create matchup: %v", err)
	}

	return matchup
}
