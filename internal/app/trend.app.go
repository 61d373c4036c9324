package app

import (
	"context"
	"fmt"
	"stockscore/internal/calculator"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/logger"
	"stockscore/internal/normalize"
	"stockscore/internal/repository"
)

const (
	trendSymbol    = "SPY"
	vixSymbol      = "^VIX"
	trendLookback  = 180
	monthBarsBack  = 21
	quarterBars    = 65
	trendRSIPeriod = 14
	trendATRPeriod = 14
	trendEMASpan   = 20

	// risk-off above this VIX level no matter what price does
	calmVIXCeiling = 20
)

type TrendService interface {
	UpdateTrend(ctx context.Context) (*model.MarketTrend, error)
}

type trendServiceHandler struct {
	MarketDataRepository  repository.MarketDataRepository
	MarketTrendRepository repository.MarketTrendRepository
}

func NewTrendService(
	marketDataRepository repository.MarketDataRepository,
	marketTrendRepository repository.MarketTrendRepository,
) TrendService {
	return trendServiceHandler{
		MarketDataRepository:  marketDataRepository,
		MarketTrendRepository: marketTrendRepository,
	}
}

// UpdateTrend rewrites the broad-market row: SPY momentum and volatility
// plus the VIX level, and the resulting risk-on flag. Risk-on requires the
// index above its 20-day EMA with the VIX below 20; a missing VIX or EMA
// means risk-off.
func (h trendServiceHandler) UpdateTrend(ctx context.Context) (*model.MarketTrend, error) {
	log := logger.FromContext(ctx)

	bars, err := h.MarketDataRepository.GetDailyBars(ctx, trendSymbol, trendLookback)
	if err != nil {
		return nil, fmt.Errorf("failed to get trend history: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no trend history for %s", trendSymbol)
	}

	var vix *float64
	vixBars, err := h.MarketDataRepository.GetDailyBars(ctx, vixSymbol, 7)
	if err != nil {
		log.Warnf("no VIX data: %v", err)
	} else if len(vixBars) > 0 {
		vix = normalize.Round(normalize.FromFloat(vixBars[len(vixBars)-1].Close), 2)
	}

	currentPrice := normalize.Round(normalize.FromFloat(bars[len(bars)-1].Close), 2)
	ema20 := normalize.Round(calculator.EMAOverBars(bars, trendEMASpan), 2)

	riskOn := currentPrice != nil && ema20 != nil && vix != nil &&
		*currentPrice > *ema20 && *vix < calmVIXCeiling

	now := timeNow()
	trend := model.MarketTrend{
		Symbol:       trendSymbol,
		CurrentPrice: currentPrice,
		Change1m:     normalize.Round(calculator.PercentChangeOverBars(bars, monthBarsBack), 2),
		Change3m:     normalize.Round(calculator.PercentChangeOverBars(bars, quarterBars), 2),
		Rsi:          normalize.Round(calculator.RSIOverBars(bars, trendRSIPeriod), 2),
		Atr:          normalize.Round(calculator.TrueRangeATR(bars, trendATRPeriod), 2),
		Ema20:        ema20,
		Vix:          vix,
		RiskOn:       riskOn,
		UpdatedAt:    now,
	}

	err = h.MarketTrendRepository.Upsert(trend)
	if err != nil {
		return nil, err
	}

	log.Infof("market trend updated: risk_on=%v price=%s ema20=%s vix=%s",
		riskOn, normalize.Format(currentPrice), normalize.Format(ema20), normalize.Format(vix))

	return &trend, nil
}
