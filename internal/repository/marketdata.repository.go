package repository

import (
	"context"
	"fmt"
	"stockscore/internal/domain"
	"stockscore/internal/logger"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"golang.org/x/time/rate"
)

// MarketDataRepository wraps the upstream quote provider. All calls are
// paced through a shared rate limiter and retried on transient failures.
type MarketDataRepository interface {
	GetDailyBars(ctx context.Context, symbol string, lookbackDays int) ([]domain.Bar, error)
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

type marketDataRepositoryHandler struct {
	Limiter    *rate.Limiter
	MaxRetries int
}

func NewMarketDataRepository(requestsPerSecond float64) MarketDataRepository {
	return &marketDataRepositoryHandler{
		Limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		MaxRetries: 3,
	}
}

func (h *marketDataRepositoryHandler) GetDailyBars(ctx context.Context, symbol string, lookbackDays int) ([]domain.Bar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -lookbackDays)

	var bars []domain.Bar
	err := h.withRetry(ctx, fmt.Sprintf("bars %s", symbol), func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}
		iter := chart.Get(params)

		bars = bars[:0]
		for iter.Next() {
			b := iter.Bar()
			bars = append(bars, domain.Bar{
				Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
				Open:   b.Open.InexactFloat64(),
				High:   b.High.InexactFloat64(),
				Low:    b.Low.InexactFloat64(),
				Close:  b.Close.InexactFloat64(),
				Volume: float64(b.Volume),
			})
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to get daily bars for %s: %w", symbol, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return bars, nil
}

func (h *marketDataRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	var out *domain.Quote
	err := h.withRetry(ctx, fmt.Sprintf("quote %s", symbol), func() error {
		// fundamentals (market cap, eps, earnings date) only come back on
		// the equity endpoint, not the plain quote one
		q, err := equity.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to get quote for %s: %w", symbol, err)
		}
		if q == nil {
			return fmt.Errorf("failed to get quote for %s: empty response", symbol)
		}

		out = &domain.Quote{
			Symbol:        symbol,
			Name:          q.ShortName,
			Price:         positiveFloat(q.RegularMarketPrice),
			PreviousClose: positiveFloat(q.RegularMarketPreviousClose),
			Open:          positiveFloat(q.RegularMarketOpen),
			Volume:        positiveFloat(float64(q.RegularMarketVolume)),
			MarketCap:     positiveFloat(float64(q.MarketCap)),
			EPS:           nonZeroFloat(q.EpsTrailingTwelveMonths),
		}
		if out.Price != nil && out.EPS != nil && *out.EPS > 0 {
			pe := *out.Price / *out.EPS
			out.PERatio = &pe
		}
		if q.EarningsTimestamp > 0 {
			ts := time.Unix(int64(q.EarningsTimestamp), 0).UTC()
			out.EarningsDate = &ts
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (h *marketDataRepositoryHandler) withRetry(ctx context.Context, label string, f func() error) error {
	log := logger.FromContext(ctx)

	var err error
	backoff := time.Second
	for attempt := 0; attempt <= h.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Warnf("retrying %s (attempt %d): %v", label, attempt, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		if err = h.Limiter.Wait(ctx); err != nil {
			return err
		}
		if err = f(); err == nil {
			return nil
		}
	}

	return err
}

// provider sends 0 for fields it has no data on
func positiveFloat(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

func nonZeroFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
