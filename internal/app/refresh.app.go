package app

import (
	"context"
	"fmt"
	"stockscore/internal/calculator"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/logger"
	"stockscore/internal/repository"
	"time"
)

// barLookbackDays covers the one-month change window plus the longest
// indicator lookback with room for market holidays.
const barLookbackDays = 90

type SkippedTicker struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

type RefreshSummary struct {
	Universe  string          `json:"universe"`
	Processed int             `json:"processed"`
	Skipped   []SkippedTicker `json:"skipped"`
}

type RefreshService interface {
	Refresh(ctx context.Context, universe string) (*RefreshSummary, error)
}

type refreshServiceHandler struct {
	UniverseTickerRepository repository.UniverseTickerRepository
	MarketDataRepository     repository.MarketDataRepository

	// optional realtime price overlay, nil outside market hours setups
	AlpacaRepository repository.AlpacaRepository
}

func NewRefreshService(
	universeTickerRepository repository.UniverseTickerRepository,
	marketDataRepository repository.MarketDataRepository,
	alpacaRepository repository.AlpacaRepository,
) RefreshService {
	return refreshServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		MarketDataRepository:     marketDataRepository,
		AlpacaRepository:         alpacaRepository,
	}
}

// Refresh re-fetches bars and quotes for every ticker in the universe and
// rewrites the stored rows. A ticker that fails to fetch is skipped with a
// reason; one bad symbol never aborts the run.
func (h refreshServiceHandler) Refresh(ctx context.Context, universe string) (*RefreshSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := h.UniverseTickerRepository.List(universe)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no tickers found in universe %s", universe)
	}

	summary := &RefreshSummary{Universe: universe}
	now := time.Now().UTC()

	updated := make([]model.UniverseTicker, 0, len(rows))
	for _, row := range rows {
		bars, err := h.MarketDataRepository.GetDailyBars(ctx, row.Symbol, barLookbackDays)
		if err != nil {
			log.Warnf("skipping %s: %v", row.Symbol, err)
			summary.Skipped = append(summary.Skipped, SkippedTicker{Symbol: row.Symbol, Reason: err.Error()})
			continue
		}
		if len(bars) == 0 {
			summary.Skipped = append(summary.Skipped, SkippedTicker{Symbol: row.Symbol, Reason: "no price history"})
			continue
		}

		applyIndicators(&row, calculator.Compute(bars))

		quote, err := h.MarketDataRepository.GetQuote(ctx, row.Symbol)
		if err != nil {
			// indicators alone are still worth persisting
			log.Warnf("no quote for %s: %v", row.Symbol, err)
		} else {
			if quote.Name != "" {
				row.Name = &quote.Name
			}
			row.MarketCap = quote.MarketCap
			row.PeRatio = quote.PERatio
			row.Eps = quote.EPS
			row.EarningsDate = quote.EarningsDate
		}

		row.FetchedAt = &now
		updated = append(updated, row)
		summary.Processed++
	}

	if h.AlpacaRepository != nil {
		h.overlayRealtimePrices(ctx, updated)
	}

	err = h.UniverseTickerRepository.Upsert(nil, updated)
	if err != nil {
		return nil, err
	}

	log.Infof("refreshed universe %s: %d processed, %d skipped", universe, summary.Processed, len(summary.Skipped))

	return summary, nil
}

// overlayRealtimePrices swaps the delayed provider close for the brokerage
// bid when one is available. Best effort; the delayed price stands on error.
func (h refreshServiceHandler) overlayRealtimePrices(ctx context.Context, rows []model.UniverseTicker) {
	log := logger.FromContext(ctx)

	symbols := make([]string, 0, len(rows))
	for _, row := range rows {
		symbols = append(symbols, row.Symbol)
	}

	prices, err := h.AlpacaRepository.GetLatestPricesWithTs(symbols)
	if err != nil {
		log.Warnf("realtime price overlay unavailable: %v", err)
		return
	}

	for i := range rows {
		if p, ok := prices[rows[i].Symbol]; ok {
			price := p.Price
			rows[i].CurrentPrice = &price
		}
	}
}
