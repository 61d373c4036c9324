package app

import (
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/domain"
	"stockscore/internal/normalize"
	"time"
)

// swapped out in tests
var timeNow = func() time.Time { return time.Now().UTC() }

// snapshotFromRow rebuilds the in-memory snapshot from a stored row. The
// field map uses the canonical names shared with the scorer and screener.
func snapshotFromRow(row model.UniverseTicker) domain.TickerSnapshot {
	return domain.TickerSnapshot{
		Symbol: row.Symbol,
		Fields: map[string]*float64{
			domain.FieldMarketCap:      row.MarketCap,
			domain.FieldPERatio:        row.PeRatio,
			domain.FieldCurrentPrice:   row.CurrentPrice,
			domain.FieldYesterdayClose: row.YesterdayClose,
			domain.FieldPctChange1D:    row.PctChange1d,
			domain.FieldPctChange1W:    row.PctChange1w,
			domain.FieldPctChange1M:    row.PctChange1m,
			domain.FieldVolume:         row.Volume,
			domain.FieldRSI:            row.Rsi,
			domain.FieldVWMA:           row.Vwma,
			domain.FieldEMA:            row.Ema,
			domain.FieldATR:            row.Atr,
			domain.FieldRelativeATR:    row.RelativeAtr,
			domain.FieldRelativeVolume: row.RelativeVolume,
			domain.FieldDollarVolume:   row.DollarVolume,
			domain.FieldGapPct:         row.GapPct,
			domain.FieldDistanceToVWMA: row.DistanceToVwma,
			domain.FieldPositiveRating: row.PositiveRating,
			domain.FieldNegativeRating: row.NegativeRating,
			domain.FieldSentimentRatio: row.SentimentRatio,
			domain.FieldScore:          row.Score,
		},
		LatestNewsDate: row.LatestNewsDate,
	}
}

// applyIndicators writes a computed indicator set onto a stored row.
func applyIndicators(row *model.UniverseTicker, ind domain.IndicatorSet) {
	row.CurrentPrice = ind.CurrentPrice
	row.YesterdayClose = ind.YesterdayClose
	row.PctChange1d = ind.PctChange1D
	row.PctChange1w = ind.PctChange1W
	row.PctChange1m = ind.PctChange1M
	row.Volume = ind.Volume
	row.Rsi = ind.RSI
	row.Vwma = ind.VWMA
	row.Ema = ind.EMA
	row.Atr = ind.ATR
	row.RelativeAtr = ind.RelativeATR
	row.RelativeVolume = ind.RelativeVolume
	row.DollarVolume = ind.DollarVolume
	row.GapPct = ind.GapPct
	row.DistanceToVwma = ind.DistanceToVWMA
}

// promptFields renders a row the way the analyst prompt expects it: every
// value formatted, missing values as N/A.
func promptFields(row model.UniverseTicker) map[string]string {
	out := map[string]string{
		domain.FieldMarketCap:      normalize.Format(row.MarketCap),
		domain.FieldPERatio:        normalize.Format(row.PeRatio),
		domain.FieldCurrentPrice:   normalize.Format(row.CurrentPrice),
		domain.FieldYesterdayClose: normalize.Format(row.YesterdayClose),
		domain.FieldPctChange1D:    normalize.FormatPercent(row.PctChange1d),
		domain.FieldPctChange1W:    normalize.FormatPercent(row.PctChange1w),
		domain.FieldPctChange1M:    normalize.FormatPercent(row.PctChange1m),
		domain.FieldVolume:         normalize.Format(row.Volume),
		domain.FieldRSI:            normalize.Format(row.Rsi),
		domain.FieldVWMA:           normalize.Format(row.Vwma),
		domain.FieldEMA:            normalize.Format(row.Ema),
		domain.FieldATR:            normalize.Format(row.Atr),
		domain.FieldVWMAVsPrice:    normalize.Format(row.DistanceToVwma),
		domain.FieldPositiveRating: normalize.FormatPercent(row.PositiveRating),
		domain.FieldNegativeRating: normalize.FormatPercent(row.NegativeRating),
		domain.FieldSentimentRatio: normalize.Format(row.SentimentRatio),
	}
	if row.Name != nil {
		out["Name"] = *row.Name
	}
	if row.Industry != nil {
		out["Industry"] = *row.Industry
	}
	return out
}

func cacheEntryFromModel(m *model.AiCache) *domain.CacheEntry {
	if m == nil {
		return nil
	}
	return &domain.CacheEntry{
		Symbol:          m.Symbol,
		CachedPrice:     m.CachedPrice,
		CachedRSI:       m.CachedRsi,
		CachedVWMA:      m.CachedVwma,
		CachedSentiment: m.CachedSentiment,
		Analysis:        m.Analysis,
		ComputedAt:      m.ComputedAt,
	}
}

func cacheModelFromEntry(e domain.CacheEntry) model.AiCache {
	return model.AiCache{
		Symbol:          e.Symbol,
		CachedPrice:     e.CachedPrice,
		CachedRsi:       e.CachedRSI,
		CachedVwma:      e.CachedVWMA,
		CachedSentiment: e.CachedSentiment,
		Analysis:        e.Analysis,
		ComputedAt:      e.ComputedAt,
	}
}
