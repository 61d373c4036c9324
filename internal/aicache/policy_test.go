package aicache

import (
	"testing"
	"time"

	"stockscore/internal/domain"
	"stockscore/internal/normalize"

	"github.com/stretchr/testify/require"
)

func cacheEntry(price, rsi, vwma float64, age time.Duration, now time.Time) *domain.CacheEntry {
	return &domain.CacheEntry{
		Symbol:      "AAPL",
		CachedPrice: normalize.Ptr(price),
		CachedRSI:   normalize.Ptr(rsi),
		CachedVWMA:  normalize.Ptr(vwma),
		Analysis:    "cached analysis",
		ComputedAt:  now.Add(-age),
	}
}

func currentSnapshot(price, rsi, vwma float64) domain.TickerSnapshot {
	return domain.TickerSnapshot{
		Symbol: "AAPL",
		Fields: map[string]*float64{
			domain.FieldCurrentPrice: normalize.Ptr(price),
			domain.FieldRSI:          normalize.Ptr(rsi),
			domain.FieldVWMA:         normalize.Ptr(vwma),
		},
	}
}

func TestShouldReuse(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	policy := DefaultPolicy()

	t.Run("within variance and age", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, 6*24*time.Hour, now)
		require.True(t, ShouldReuse(entry, currentSnapshot(104.9, 55, 98), now, policy))
	})

	t.Run("price outside the deadband", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, 6*24*time.Hour, now)
		require.False(t, ShouldReuse(entry, currentSnapshot(106, 55, 98), now, policy))
	})

	t.Run("stale entry with identical values", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, 8*24*time.Hour, now)
		require.False(t, ShouldReuse(entry, currentSnapshot(100, 55, 98), now, policy))
	})

	t.Run("no entry", func(t *testing.T) {
		require.False(t, ShouldReuse(nil, currentSnapshot(100, 55, 98), now, policy))
	})

	t.Run("unknown current value counts as changed", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, time.Hour, now)
		snap := currentSnapshot(100, 55, 98)
		snap.Fields[domain.FieldRSI] = nil
		require.False(t, ShouldReuse(entry, snap, now, policy))
	})

	t.Run("unknown cached value counts as changed", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, time.Hour, now)
		entry.CachedVWMA = nil
		require.False(t, ShouldReuse(entry, currentSnapshot(100, 55, 98), now, policy))
	})

	t.Run("lower boundary is inclusive", func(t *testing.T) {
		entry := cacheEntry(100, 55, 98, time.Hour, now)
		snap := currentSnapshot(95, 55, 98)
		require.True(t, ShouldReuse(entry, snap, now, policy))
	})
}

func TestNewEntry(t *testing.T) {
	now := time.Now()
	snap := currentSnapshot(100, 55, 98)
	snap.Fields[domain.FieldSentimentRatio] = normalize.Ptr(0.7)

	entry := NewEntry(snap, "fresh analysis", now)
	require.Equal(t, "AAPL", entry.Symbol)
	require.Equal(t, "fresh analysis", entry.Analysis)
	require.Equal(t, now, entry.ComputedAt)
	require.Equal(t, 100.0, *entry.CachedPrice)
	require.Equal(t, 0.7, *entry.CachedSentiment)
}
