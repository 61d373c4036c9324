package app

import (
	"context"
	"database/sql"
	"testing"

	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/normalize"
	mock_repository "stockscore/internal/repository/mocks"
	"stockscore/internal/scoring"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScoreUniverse(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)

	handler := scoreServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		Config:                   scoring.DefaultConfig(),
	}

	universeTickerRepository.EXPECT().List("LargeCap").Return([]model.UniverseTicker{
		{
			Universe:       "LargeCap",
			Symbol:         "AAA",
			PctChange1m:    normalize.Ptr(10),
			PctChange1w:    normalize.Ptr(5),
			PctChange1d:    normalize.Ptr(2),
			Volume:         normalize.Ptr(2_000_000),
			Rsi:            normalize.Ptr(50),
			SentimentRatio: normalize.Ptr(0.8),
			Atr:            normalize.Ptr(3),
			CurrentPrice:   normalize.Ptr(105),
			Vwma:           normalize.Ptr(100),
		},
		{Universe: "LargeCap", Symbol: "BBB"}, // nothing known yet
	}, nil)

	var upserted []model.UniverseTicker
	universeTickerRepository.EXPECT().
		Upsert(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.UniverseTicker) error {
			upserted = rows
			return nil
		})

	summary, err := handler.ScoreUniverse(context.Background(), "LargeCap")
	require.NoError(t, err)

	require.Equal(t, 2, summary.Scored)
	require.Empty(t, summary.Skipped)
	require.Len(t, upserted, 2)

	// .30*10 + .20*5 + .15*2 + .05*2 + .10*50 + .10*.8 + .05*(1/(3+1)) + .05*1
	require.InDelta(t, 9.54, *upserted[0].Score, 1e-9)
	require.Equal(t, string(scoring.CategoryStrongBuy), *upserted[0].Category)

	// every metric missing scores zero, never errors
	require.InDelta(t, 0, *upserted[1].Score, 1e-9)
	require.Equal(t, string(scoring.CategoryAvoid), *upserted[1].Category)
}

func TestScoreUniverse_customExpression(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)

	cfg := scoring.DefaultConfig()
	cfg.CustomExpression = "rsi / 10 + pct1m"

	handler := scoreServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		Config:                   cfg,
	}

	universeTickerRepository.EXPECT().List("MidCap").Return([]model.UniverseTicker{
		{
			Universe:    "MidCap",
			Symbol:      "CCC",
			Rsi:         normalize.Ptr(60),
			PctChange1m: normalize.Ptr(1.5),
		},
	}, nil)

	var upserted []model.UniverseTicker
	universeTickerRepository.EXPECT().
		Upsert(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.UniverseTicker) error {
			upserted = rows
			return nil
		})

	summary, err := handler.ScoreUniverse(context.Background(), "MidCap")
	require.NoError(t, err)

	require.Equal(t, 1, summary.Scored)
	require.InDelta(t, 7.5, *upserted[0].Score, 1e-9)
}
