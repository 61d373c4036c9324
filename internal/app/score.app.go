package app

import (
	"context"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/logger"
	"stockscore/internal/repository"
	"stockscore/internal/scoring"
)

type ScoreSummary struct {
	Universe string          `json:"universe"`
	Scored   int             `json:"scored"`
	Skipped  []SkippedTicker `json:"skipped"`
}

type ScoreService interface {
	ScoreUniverse(ctx context.Context, universe string) (*ScoreSummary, error)
}

type scoreServiceHandler struct {
	UniverseTickerRepository repository.UniverseTickerRepository
	Config                   scoring.Config
}

func NewScoreService(
	universeTickerRepository repository.UniverseTickerRepository,
	cfg scoring.Config,
) ScoreService {
	return scoreServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		Config:                   cfg,
	}
}

// ScoreUniverse recomputes the composite score and category for every stored
// row from the fields already on it. It never reaches out to the market data
// provider; refresh owns that.
func (h scoreServiceHandler) ScoreUniverse(ctx context.Context, universe string) (*ScoreSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := h.UniverseTickerRepository.List(universe)
	if err != nil {
		return nil, err
	}

	summary := &ScoreSummary{Universe: universe}

	updated := make([]model.UniverseTicker, 0, len(rows))
	for _, row := range rows {
		snapshot := snapshotFromRow(row)
		prepared := scoring.PrepareFields(snapshot)

		score, err := scoring.Score(prepared, h.Config, snapshot.NewsAgeDays(timeNow()))
		if err != nil {
			log.Warnf("skipping score for %s: %v", row.Symbol, err)
			summary.Skipped = append(summary.Skipped, SkippedTicker{Symbol: row.Symbol, Reason: err.Error()})
			continue
		}

		category := string(scoring.Categorize(score))
		row.Score = &score
		row.Category = &category

		updated = append(updated, row)
		summary.Scored++
	}

	err = h.UniverseTickerRepository.Upsert(nil, updated)
	if err != nil {
		return nil, err
	}

	log.Infof("scored universe %s: %d scored, %d skipped", universe, summary.Scored, len(summary.Skipped))

	return summary, nil
}
