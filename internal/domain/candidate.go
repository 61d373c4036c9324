package domain

import "time"

// ScoredCandidate is the ranker's unit of work: one ticker annotated with
// its composite score, decay-adjusted score and dense rank. Owned by the
// ranker during a run and emitted as output rows.
type ScoredCandidate struct {
	Symbol        string
	Universe      string
	Snapshot      TickerSnapshot
	RawScore      float64
	NewsAgeDays   float64
	AdjustedScore float64
	Rank          int

	StopPrice *float64
	BuyPrice  *float64
	SellPrice *float64
}

// CacheEntry is the persisted record of a prior AI analysis, replaced
// wholesale on every recomputation. ComputedAt is non-decreasing per symbol.
type CacheEntry struct {
	Symbol          string
	CachedPrice     *float64
	CachedRSI       *float64
	CachedVWMA      *float64
	CachedSentiment *float64
	Analysis        string
	ComputedAt      time.Time
}

// MarketTrend is the broad-market snapshot written by the trend pass.
type MarketTrend struct {
	Symbol       string
	CurrentPrice *float64
	Change1M     *float64
	Change3M     *float64
	RSI          *float64
	ATR          *float64
	EMA20        *float64
	VIX          *float64
	RiskOn       bool
	UpdatedAt    time.Time
}
