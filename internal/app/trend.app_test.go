package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/domain"
	mock_repository "stockscore/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// trendBars rises overall but pulls back every few days so the RSI has
// losses to average.
func trendBars(n int, start float64) []domain.Bar {
	bars := dailyBars(n, start)
	for i := range bars {
		if i%4 == 1 {
			bars[i].Close -= 1.5
			bars[i].Open -= 1.5
		}
	}
	return bars
}

func TestUpdateTrend(t *testing.T) {
	ctrl := gomock.NewController(t)

	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
	marketTrendRepository := mock_repository.NewMockMarketTrendRepository(ctrl)

	handler := trendServiceHandler{
		MarketDataRepository:  marketDataRepository,
		MarketTrendRepository: marketTrendRepository,
	}

	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	origNow := timeNow
	timeNow = func() time.Time { return now }
	defer func() { timeNow = origNow }()

	// a steadily rising index sits above its 20-day EMA
	bars := trendBars(80, 400)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "SPY", trendLookback).
		Return(bars, nil)

	vixDay := time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "^VIX", 7).
		Return([]domain.Bar{
			{Date: vixDay, Close: 18},
			{Date: vixDay.AddDate(0, 0, 1), Close: 16},
			{Date: vixDay.AddDate(0, 0, 2), Close: 15},
		}, nil)

	var saved model.MarketTrend
	marketTrendRepository.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(trend model.MarketTrend) error {
			saved = trend
			return nil
		})

	trend, err := handler.UpdateTrend(context.Background())
	require.NoError(t, err)
	require.Equal(t, saved, *trend)

	require.Equal(t, "SPY", trend.Symbol)
	require.InDelta(t, bars[len(bars)-1].Close, *trend.CurrentPrice, 1e-9)
	require.InDelta(t, 15, *trend.Vix, 1e-9)
	require.NotNil(t, trend.Ema20)
	require.Less(t, *trend.Ema20, *trend.CurrentPrice)
	require.NotNil(t, trend.Rsi)
	require.NotNil(t, trend.Atr)
	require.NotNil(t, trend.Change1m)
	require.NotNil(t, trend.Change3m)
	require.True(t, trend.RiskOn)
	require.Equal(t, now, trend.UpdatedAt)
}

func TestUpdateTrend_elevatedVIXIsRiskOff(t *testing.T) {
	ctrl := gomock.NewController(t)

	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
	marketTrendRepository := mock_repository.NewMockMarketTrendRepository(ctrl)

	handler := trendServiceHandler{
		MarketDataRepository:  marketDataRepository,
		MarketTrendRepository: marketTrendRepository,
	}

	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "SPY", trendLookback).
		Return(trendBars(80, 400), nil)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "^VIX", 7).
		Return([]domain.Bar{{Close: 28}}, nil)

	var saved model.MarketTrend
	marketTrendRepository.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(trend model.MarketTrend) error {
			saved = trend
			return nil
		})

	trend, err := handler.UpdateTrend(context.Background())
	require.NoError(t, err)
	require.False(t, trend.RiskOn)
	require.InDelta(t, 28, *saved.Vix, 1e-9)
}

func TestUpdateTrend_missingVIXIsRiskOff(t *testing.T) {
	ctrl := gomock.NewController(t)

	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
	marketTrendRepository := mock_repository.NewMockMarketTrendRepository(ctrl)

	handler := trendServiceHandler{
		MarketDataRepository:  marketDataRepository,
		MarketTrendRepository: marketTrendRepository,
	}

	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "SPY", trendLookback).
		Return(trendBars(80, 400), nil)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "^VIX", 7).
		Return(nil, fmt.Errorf("no data found for this range"))

	marketTrendRepository.EXPECT().
		Upsert(gomock.Any()).
		Return(nil)

	trend, err := handler.UpdateTrend(context.Background())
	require.NoError(t, err)
	require.False(t, trend.RiskOn)
	require.Nil(t, trend.Vix)
}
