package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"stockscore/internal/aicache"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/normalize"
	"stockscore/internal/repository"
	mock_repository "stockscore/internal/repository/mocks"
	"stockscore/internal/scoring"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scoredRow(universe, symbol string, score, price, rsi, vwma, atr float64) model.UniverseTicker {
	return model.UniverseTicker{
		Universe:     universe,
		Symbol:       symbol,
		Score:        normalize.Ptr(score),
		CurrentPrice: normalize.Ptr(price),
		Rsi:          normalize.Ptr(rsi),
		Vwma:         normalize.Ptr(vwma),
		Atr:          normalize.Ptr(atr),
	}
}

func TestGenerateTopPicks(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)
	aiCacheRepository := mock_repository.NewMockAiCacheRepository(ctrl)
	topPickRepository := mock_repository.NewMockTopPickRepository(ctrl)
	gptRepository := mock_repository.NewMockGptRepository(ctrl)

	handler := topPicksServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		AiCacheRepository:        aiCacheRepository,
		TopPickRepository:        topPickRepository,
		GptRepository:            gptRepository,
		DecayPolicy:              scoring.NewsDecayCliff,
		CachePolicy:              aicache.DefaultPolicy(),
		PicksPerUniverse:         10,
	}

	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	origNow := timeNow
	timeNow = func() time.Time { return now }
	defer func() { timeNow = origNow }()

	// no news dates anywhere, so every raw score takes the stale-news decay.
	// EEE is scored but below the super-green threshold: it must never be
	// ranked or analyzed, no matter how much room the per-universe cap leaves
	universeTickerRepository.EXPECT().ListAll().Return([]model.UniverseTicker{
		scoredRow("LargeCap", "AAA", 8.0, 100, 50, 99, 2),
		scoredRow("LargeCap", "BBB", 7.0, 80, 45, 79, 4),
		scoredRow("LargeCap", "EEE", 5.0, 60, 48, 61, 2),
		{Universe: "LargeCap", Symbol: "DDD"}, // never scored
		scoredRow("MidCap", "CCC", 9.0, 50, 55, 49, 1),
	}, nil)

	// AAA: cached analysis still inside the variance deadband, reused as-is
	aiCacheRepository.EXPECT().Get("AAA").Return(&model.AiCache{
		Symbol:      "AAA",
		CachedPrice: normalize.Ptr(101),
		CachedRsi:   normalize.Ptr(50),
		CachedVwma:  normalize.Ptr(99),
		Analysis:    "cached analysis for AAA",
		ComputedAt:  now.Add(-24 * time.Hour),
	}, nil)

	// BBB: no cache entry at all
	aiCacheRepository.EXPECT().Get("BBB").Return(nil, nil)

	// CCC: cache entry aged out
	aiCacheRepository.EXPECT().Get("CCC").Return(&model.AiCache{
		Symbol:      "CCC",
		CachedPrice: normalize.Ptr(50),
		CachedRsi:   normalize.Ptr(55),
		CachedVwma:  normalize.Ptr(49),
		Analysis:    "stale analysis for CCC",
		ComputedAt:  now.Add(-8 * 24 * time.Hour),
	}, nil)

	freshText := map[string]string{
		"BBB": `## Recommendation: Buy

## Recommended Buy Price: $78.00 - $82.00

## Recommended Sell Price: $95.00 - $100.00

## Technical Analysis Summary:
Momentum is improving above the volume-weighted average.`,
		"CCC": "Recommendation: Hold",
	}

	gptRepository.EXPECT().
		AnalyzeTicker(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, req repository.TickerAnalysisRequest) (string, error) {
			text, ok := freshText[req.Symbol]
			require.True(t, ok, "unexpected analysis request for %s", req.Symbol)
			return text, nil
		})

	written := map[string]model.AiCache{}
	aiCacheRepository.EXPECT().
		Put(nil, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ *sql.Tx, entry model.AiCache) error {
			written[entry.Symbol] = entry
			return nil
		})

	var picks []model.TopPick
	topPickRepository.EXPECT().
		Add(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.TopPick) error {
			picks = rows
			return nil
		})

	summary, err := handler.GenerateTopPicks(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, summary.Picks)
	require.Equal(t, 1, summary.CacheReused)
	require.Equal(t, 2, summary.CacheMissed)
	require.Empty(t, summary.FailedToRank)

	require.Len(t, picks, 3)

	// decayed scores order the merged list: 9.0 -> 7.2, 8.0 -> 6.4, 7.0 -> 5.6
	require.Equal(t, "CCC", picks[0].Symbol)
	require.Equal(t, int32(1), picks[0].Rank)
	require.InDelta(t, 7.2, picks[0].AdjustedScore, 1e-9)
	require.Equal(t, "AAA", picks[1].Symbol)
	require.Equal(t, int32(2), picks[1].Rank)
	require.Equal(t, "BBB", picks[2].Symbol)
	require.Equal(t, int32(3), picks[2].Rank)

	for _, pick := range picks {
		require.Equal(t, summary.RunID, pick.RunID)
		require.Equal(t, now, pick.CreatedAt)
	}

	// bands: stop = price - 1.5*ATR, buy = price, sell = 1.2*buy
	require.InDelta(t, 97, *picks[1].StopPrice, 1e-9)
	require.InDelta(t, 100, *picks[1].BuyPrice, 1e-9)
	require.InDelta(t, 120, *picks[1].SellPrice, 1e-9)

	// AAA carried the cached text through the parser
	require.Equal(t, "cached analysis for AAA", *picks[1].Analysis)

	// BBB got a fresh analysis with parseable structure
	require.Equal(t, "Buy", *picks[2].Decision)
	require.InDelta(t, 78, *picks[2].BuyRangeLow, 1e-9)
	require.InDelta(t, 82, *picks[2].BuyRangeHigh, 1e-9)
	require.InDelta(t, 95, *picks[2].SellRangeLow, 1e-9)
	require.InDelta(t, 100, *picks[2].SellRangeHigh, 1e-9)
	require.Contains(t, *picks[2].TechnicalSummary, "volume-weighted average")

	// fresh generations replaced the cache rows wholesale
	require.Len(t, written, 2)
	require.InDelta(t, 80, *written["BBB"].CachedPrice, 1e-9)
	require.Equal(t, freshText["BBB"], written["BBB"].Analysis)
	require.Equal(t, now, written["BBB"].ComputedAt)
	require.InDelta(t, 50, *written["CCC"].CachedPrice, 1e-9)
}

func TestGenerateTopPicks_analysisFailureKeepsPick(t *testing.T) {
	ctrl := gomock.NewController(t)

	universeTickerRepository := mock_repository.NewMockUniverseTickerRepository(ctrl)
	aiCacheRepository := mock_repository.NewMockAiCacheRepository(ctrl)
	topPickRepository := mock_repository.NewMockTopPickRepository(ctrl)
	gptRepository := mock_repository.NewMockGptRepository(ctrl)

	handler := topPicksServiceHandler{
		UniverseTickerRepository: universeTickerRepository,
		AiCacheRepository:        aiCacheRepository,
		TopPickRepository:        topPickRepository,
		GptRepository:            gptRepository,
		DecayPolicy:              scoring.NewsDecayCliff,
		CachePolicy:              aicache.DefaultPolicy(),
		PicksPerUniverse:         10,
	}

	universeTickerRepository.EXPECT().ListAll().Return([]model.UniverseTicker{
		scoredRow("LargeCap", "AAA", 8.0, 100, 50, 99, 2),
	}, nil)
	aiCacheRepository.EXPECT().Get("AAA").Return(nil, nil)
	gptRepository.EXPECT().
		AnalyzeTicker(gomock.Any(), gomock.Any()).
		Return("", context.DeadlineExceeded)

	var picks []model.TopPick
	topPickRepository.EXPECT().
		Add(nil, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, rows []model.TopPick) error {
			picks = rows
			return nil
		})

	summary, err := handler.GenerateTopPicks(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.FailedToRank, 1)
	require.Equal(t, "AAA", summary.FailedToRank[0].Symbol)
	require.Equal(t, 0, summary.CacheReused)
	require.Equal(t, 0, summary.CacheMissed)

	// the pick survives without analysis fields
	require.Len(t, picks, 1)
	require.Nil(t, picks[0].Decision)
	require.Nil(t, picks[0].Analysis)
}
