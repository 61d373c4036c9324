package app

import (
	"context"
	"fmt"
	"os"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/logger"
	"stockscore/internal/repository"
	"strings"

	"github.com/gocarina/gocsv"
)

type universeCsvRow struct {
	Symbol   string `csv:"Symbol"`
	Name     string `csv:"Name"`
	Industry string `csv:"Industry"`
}

type SeedService interface {
	SeedUniverse(ctx context.Context, universe, csvPath string) (int, error)
}

type seedServiceHandler struct {
	UniverseTickerRepository repository.UniverseTickerRepository
}

func NewSeedService(universeTickerRepository repository.UniverseTickerRepository) SeedService {
	return seedServiceHandler{UniverseTickerRepository: universeTickerRepository}
}

// SeedUniverse loads a symbol list from csv into the universe. Existing rows
// are overwritten, so refresh and score should run right after seeding.
func (h seedServiceHandler) SeedUniverse(ctx context.Context, universe, csvPath string) (int, error) {
	log := logger.FromContext(ctx)

	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open universe csv: %w", err)
	}
	defer f.Close()

	csvRows := []universeCsvRow{}
	err = gocsv.UnmarshalFile(f, &csvRows)
	if err != nil {
		return 0, fmt.Errorf("failed to parse universe csv: %w", err)
	}

	now := timeNow()
	rows := make([]model.UniverseTicker, 0, len(csvRows))
	seen := map[string]bool{}
	for _, r := range csvRows {
		symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true

		row := model.UniverseTicker{
			Universe:  universe,
			Symbol:    symbol,
			FetchedAt: &now,
		}
		if name := strings.TrimSpace(r.Name); name != "" {
			row.Name = &name
		}
		if industry := strings.TrimSpace(r.Industry); industry != "" {
			row.Industry = &industry
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return 0, fmt.Errorf("no symbols found in %s", csvPath)
	}

	err = h.UniverseTickerRepository.Upsert(nil, rows)
	if err != nil {
		return 0, err
	}

	log.Infof("seeded universe %s with %d symbols", universe, len(rows))

	return len(rows), nil
}
