// Command importer bulk-loads the champion directory from a pair of Data
// Dragon locale files. It wholesale-replaces the existing directory; the API
// itself never writes champions.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/nathanlav/matchup-tracker/internal/domain"
	"github.com/nathanlav/matchup-tracker/internal/repository/postgres"
)

// ddragonFile mirrors the Data Dragon champion file: a "data" object keyed
// by champion id, not an array.
type ddragonFile struct {
	Version string                     `json:"version"`
	Data    map[string]ddragonChampion `json:"data"`
}

type ddragonChampion struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
}

func main() {
	frPath := flag.String("fr", "data/champions_fr.json", "path to the French Data Dragon champion file")
	enPath := flag.String("en", "data/champions_en.json", "path to the English Data Dragon champion file")
	version := flag.String("version", "15.23.1", "Data Dragon version used to build image URLs")
	flag.Parse()

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "matchup-importer").Logger()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL environment variable is required")
	}

	fr, err := loadFile(*frPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *frPath).Msg("failed to load French champion file")
	}
	en, err := loadFile(*enPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *enPath).Msg("failed to load English champion file")
	}

	champions := buildChampions(fr, en, *version)
	log.Info().Int("count", len(champions)).Msg("importing champions")

	db, err := postgres.NewConnection(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	repos := postgres.NewRepositories(db)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repos.Champion.ReplaceAll(ctx, champions); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Msg("import complete")
}

func loadFile(path string) (*ddragonFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file ddragonFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &file, nil
}

// buildChampions pairs the two locales by champion id. A champion missing
// from the English file keeps its French name in both fields.
func buildChampions(fr, en *ddragonFile, version string) []*domain.Champion {
	champions := make([]*domain.Champion, 0, len(fr.Data))

	for id, frChamp := range fr.Data {
		nameEN := frChamp.Name
		if enChamp, ok := en.Data[id]; ok {
			nameEN = enChamp.Name
		}

		role := "Inconnu"
		if len(frChamp.Tags) > 0 {
			role = frChamp.Tags[0]
		}

		tags := frChamp.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, _ := json.Marshal(tags)

		var imageURL string
		if frChamp.Image.Full != "" {
			imageURL = fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s", version, frChamp.Image.Full)
		}

		champions = append(champions, &domain.Champion{
			ID:        id,
			Name:      frChamp.Name,
			NameEN:    nameEN,
			ImageURL:  imageURL,
			Role:      role,
			Tags:      datatypes.JSON(tagsJSON),
			Active:    true,
			CreatedAt: time.Now(),
		})
	}

	sort.Slice(champions, func(i, j int) bool { return champions[i].ID < champions[j].ID })
	return champions
}
