// Package aicache decides when a previously generated AI analysis may be
// reused for a ticker, and when it must be recomputed. Entries themselves
// live in the store's ai_cache table.
package aicache

import (
	"time"

	"stockscore/internal/domain"
)

// Policy is the reuse deadband: an entry is fresh enough when it is younger
// than MaxAge and each tracked metric sits within the symmetric
// VarianceThreshold band around its cached value.
type Policy struct {
	MaxAge            time.Duration
	VarianceThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAge:            7 * 24 * time.Hour,
		VarianceThreshold: 0.05,
	}
}

// ShouldReuse reports whether the cached analysis still represents the
// current snapshot. The tracked metrics are price, RSI and VWMA; an unknown
// value on either side of any of them counts as changed.
func ShouldReuse(entry *domain.CacheEntry, snapshot domain.TickerSnapshot, now time.Time, policy Policy) bool {
	if entry == nil {
		return false
	}
	if now.Sub(entry.ComputedAt) > policy.MaxAge {
		return false
	}

	checks := []struct {
		cached  *float64
		current *float64
	}{
		{entry.CachedPrice, snapshot.Field(domain.FieldCurrentPrice)},
		{entry.CachedRSI, snapshot.Field(domain.FieldRSI)},
		{entry.CachedVWMA, snapshot.Field(domain.FieldVWMA)},
	}
	for _, c := range checks {
		if !withinVariance(c.cached, c.current, policy.VarianceThreshold) {
			return false
		}
	}
	return true
}

// withinVariance is a plain percentage deadband, not a statistical test:
// cached*(1-t) <= current <= cached*(1+t).
func withinVariance(cached, current *float64, threshold float64) bool {
	if cached == nil || current == nil {
		return false
	}
	low := *cached * (1 - threshold)
	high := *cached * (1 + threshold)
	if *cached < 0 {
		low, high = high, low
	}
	return low <= *current && *current <= high
}

// NewEntry builds the wholesale replacement row written after a fresh
// generation. There is deliberately no merge with any prior entry.
func NewEntry(snapshot domain.TickerSnapshot, analysis string, now time.Time) domain.CacheEntry {
	return domain.CacheEntry{
		Symbol:          snapshot.Symbol,
		CachedPrice:     snapshot.Field(domain.FieldCurrentPrice),
		CachedRSI:       snapshot.Field(domain.FieldRSI),
		CachedVWMA:      snapshot.Field(domain.FieldVWMA),
		CachedSentiment: snapshot.Field(domain.FieldSentimentRatio),
		Analysis:        analysis,
		ComputedAt:      now,
	}
}
