package ranker

import (
	"testing"
	"time"

	"stockscore/internal/domain"
	"stockscore/internal/normalize"
	"stockscore/internal/scoring"

	"github.com/stretchr/testify/require"
)

func candidate(symbol string, score float64, newsAge time.Duration, now time.Time) domain.ScoredCandidate {
	newsDate := now.Add(-newsAge)
	return domain.ScoredCandidate{
		Symbol:   symbol,
		RawScore: score,
		Snapshot: domain.TickerSnapshot{
			Symbol: symbol,
			Fields: map[string]*float64{
				domain.FieldCurrentPrice: normalize.Ptr(100),
				domain.FieldATR:          normalize.Ptr(2),
			},
			LatestNewsDate: &newsDate,
		},
	}
}

func TestRank_DedupesAndRanksDensely(t *testing.T) {
	now := time.Now()
	largeCap := []domain.ScoredCandidate{
		candidate("AAPL", 7.0, 24*time.Hour, now),
		candidate("MSFT", 8.0, 24*time.Hour, now),
	}
	midCap := []domain.ScoredCandidate{
		candidate("AAPL", 9.5, 24*time.Hour, now), // duplicate, later universe loses
		candidate("SOFI", 7.5, 24*time.Hour, now),
	}

	ranked := Rank([][]domain.ScoredCandidate{largeCap, midCap}, scoring.NewsDecayCliff, now)

	require.Len(t, ranked, 3)
	symbols := map[string]int{}
	ranks := map[int]bool{}
	for _, c := range ranked {
		symbols[c.Symbol]++
		ranks[c.Rank] = true
	}
	for sym, n := range symbols {
		require.Equalf(t, 1, n, "symbol %s appears %d times", sym, n)
	}
	// ranks are a gapless permutation of 1..N
	for i := 1; i <= len(ranked); i++ {
		require.True(t, ranks[i])
	}

	require.Equal(t, "MSFT", ranked[0].Symbol)
	require.Equal(t, "SOFI", ranked[1].Symbol)
	// the first-seen AAPL (score 7.0) survived, not the 9.5 duplicate
	require.Equal(t, "AAPL", ranked[2].Symbol)
	require.Equal(t, 7.0, ranked[2].RawScore)
}

func TestRank_AppliesNewsDecay(t *testing.T) {
	now := time.Now()
	fresh := candidate("FRESH", 7.0, 24*time.Hour, now)
	stale := candidate("STALE", 7.5, 120*24*time.Hour, now)

	ranked := Rank([][]domain.ScoredCandidate{{fresh, stale}}, scoring.NewsDecayCliff, now)

	// 7.5 decays to 6.0, so the fresh 7.0 wins
	require.Equal(t, "FRESH", ranked[0].Symbol)
	require.InDelta(t, 7.0, ranked[0].AdjustedScore, 1e-9)
	require.InDelta(t, 6.0, ranked[1].AdjustedScore, 1e-9)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	now := time.Now()
	a := candidate("A", 7.0, 24*time.Hour, now)
	b := candidate("B", 7.0, 24*time.Hour, now)

	ranked := Rank([][]domain.ScoredCandidate{{a, b}}, scoring.NewsDecayCliff, now)
	require.Equal(t, "A", ranked[0].Symbol)
	require.Equal(t, "B", ranked[1].Symbol)
	require.Equal(t, 1, ranked[0].Rank)
	require.Equal(t, 2, ranked[1].Rank)
}

func TestRank_FillsPriceBands(t *testing.T) {
	now := time.Now()
	ranked := Rank([][]domain.ScoredCandidate{{candidate("AAPL", 7.0, time.Hour, now)}}, scoring.NewsDecayCliff, now)

	c := ranked[0]
	require.NotNil(t, c.StopPrice)
	require.InDelta(t, 97.0, *c.StopPrice, 1e-9) // 100 - 1.5*2
	require.NotNil(t, c.BuyPrice)
	require.InDelta(t, 100.0, *c.BuyPrice, 1e-9)
	require.NotNil(t, c.SellPrice)
	require.InDelta(t, 120.0, *c.SellPrice, 1e-9)
}

func TestPriceBands_UnknownPropagates(t *testing.T) {
	stop, buy, sell := PriceBands(nil, normalize.Ptr(2))
	require.Nil(t, stop)
	require.Nil(t, buy)
	require.Nil(t, sell)

	stop, buy, sell = PriceBands(normalize.Ptr(50), nil)
	require.Nil(t, stop)
	require.NotNil(t, buy)
	require.NotNil(t, sell)
	require.InDelta(t, 60.0, *sell, 1e-9)
}
