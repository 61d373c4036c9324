package app

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/domain"
	mock_repository "stockscore/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dailyBars(n int, start float64) []domain.Bar {
	bars := make([]domain.Bar, n)
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		close := start + float64(i)*0.5
		bars[i] = domain.Bar{
			Date:   day.AddDate(0, 0, i),
			Open:   close - 0.2,
			High:   close + 1,
			Low:    close - 1,
			Close:  close,
			Volume: 1_000_000,
		}
	}
	return bars
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

	handler := refreshServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		MarketDataRepository:     marketDataRepository,
	}

	universeTickerRepository.EXPECT().List("LargeCap").Return([]model.UniverseTicker{
		{Universe: "LargeCap", Symbol: "AAA"},
		{Universe: "LargeCap", Symbol: "BAD"},
	}, nil)

	bars := dailyBars(30, 100)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "AAA", barLookbackDays).
		Return(bars, nil)
	marketDataRepository.EXPECT().
		GetDailyBars(gomock.Any(), "BAD", barLookbackDays).
		Return(nil, fmt.Errorf("symbol delisted"))

	name := "Triple A Corp"
	marketCap := 5e9
	pe := 21.5
	eps := 4.2
	earnings := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	marketDataRepository.EXPECT().
		GetQuote(gomock.Any(), "AAA").
		Return(&domain.Quote{
			Symbol:       "AAA",
			Name:         name,
			MarketCap:    &marketCap,
			PERatio:      &pe,
			EPS:          &eps,
			EarningsDate: &earnings,
		}, nil)

	var upserted []model.UniverseTicker
	universeTickerRepository.EXPECT().
		Upsert(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.UniverseTicker) error {
			upserted = rows
			return nil
		})

	summary, err := handler.Refresh(context.Background(), "LargeCap")
	require.NoError(t, err)

	require.Equal(t, 1, summary.Processed)
	require.Len(t, summary.Skipped, 1)
	require.Equal(t, "BAD", summary.Skipped[0].Symbol)
	require.Contains(t, summary.Skipped[0].Reason, "delisted")

	require.Len(t, upserted, 1)
	row := upserted[0]
	require.Equal(t, "AAA", row.Symbol)
	require.NotNil(t, row.FetchedAt)

	lastClose := bars[len(bars)-1].Close
	require.InDelta(t, lastClose, *row.CurrentPrice, 1e-9)
	require.InDelta(t, bars[len(bars)-2].Close, *row.YesterdayClose, 1e-9)
	require.InDelta(t, (lastClose-bars[len(bars)-2].Close)/bars[len(bars)-2].Close*100, *row.PctChange1d, 1e-9)
	require.NotNil(t, row.Rsi)
	// every delta in the window is a gain
	require.Equal(t, 100.0, *row.Rsi)
	require.NotNil(t, row.Vwma)
	require.NotNil(t, row.Ema)
	require.NotNil(t, row.Atr)

	require.Equal(t, name, *row.Name)
	require.InDelta(t, marketCap, *row.MarketCap, 1e-9)
	require.InDelta(t, pe, *row.PeRatio, 1e-9)
	require.InDelta(t, eps, *row.Eps, 1e-9)
	require.Equal(t, earnings, *row.EarningsDate)
}

func TestRefresh_emptyUniverse(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

	handler := refreshServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		MarketDataRepository:     marketDataRepository,
	}

	universeTickerRepository.EXPECT().List("Empty").Return(nil, nil)

	_, err := handler.Refresh(context.Background(), "Empty")
	require.ErrorContains(t, err, "no tickers")
}
