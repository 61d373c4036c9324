package domain

import "time"

// Canonical field names shared by the store columns, the scorer and the
// screener. These mirror the sheet headers the system was migrated from.
const (
	FieldMarketCap         = "Market Cap"
	FieldPERatio           = "P/E"
	FieldCurrentPrice      = "Current Price"
	FieldYesterdayClose    = "Yesterday Close Price"
	FieldPctChange1D       = "1 Day Price Change"
	FieldPctChange1W       = "1 Week Price Change"
	FieldPctChange1M       = "1 Month Price Change"
	FieldVolume            = "Volume"
	FieldRSI               = "RSI"
	FieldVWMA              = "VWMA"
	FieldEMA               = "EMA"
	FieldATR               = "ATR"
	FieldPositiveRating    = "Positive Rating"
	FieldNegativeRating    = "Negative Rating"
	FieldSentimentRatio    = "Sentiment Ratio"
	FieldVWMAVsPrice       = "VWMA vs Current Price"
	FieldScore             = "Score"
	FieldRelativeVolume    = "Relative Volume"
	FieldRelativeATR       = "Relative ATR"
	FieldDollarVolume      = "Dollar Volume"
	FieldGapPct            = "Gap %"
	FieldDistanceToVWMA    = "Distance to VWMA"
)

// TickerSnapshot is one ticker's observable state for a single run. A nil
// field value means unknown, which is distinct from zero. Snapshots are
// never mutated after construction; the next run builds fresh ones.
type TickerSnapshot struct {
	Symbol         string
	Fields         map[string]*float64
	LatestNewsDate *time.Time
}

func (s TickerSnapshot) Field(name string) *float64 {
	if s.Fields == nil {
		return nil
	}
	return s.Fields[name]
}

// NewsAgeDays returns the age of the latest headline in whole days, or 999
// when no news date is known. The sentinel matches what the scoring decay
// expects for "no news".
func (s TickerSnapshot) NewsAgeDays(now time.Time) float64 {
	if s.LatestNewsDate == nil {
		return 999
	}
	return float64(int(now.Sub(*s.LatestNewsDate).Hours() / 24))
}

// Bar is one day of a price/volume history, date-ascending when in a slice.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// IndicatorSet holds derived technical values for one ticker. Every value is
// optional: nil when the history was too short for the lookback window or a
// divisor was zero.
type IndicatorSet struct {
	CurrentPrice   *float64
	YesterdayClose *float64
	PctChange1D    *float64
	PctChange1W    *float64
	PctChange1M    *float64
	Volume         *float64
	RSI            *float64
	VWMA           *float64
	EMA            *float64
	ATR            *float64
	RelativeATR    *float64
	RelativeVolume *float64
	DollarVolume   *float64
	GapPct         *float64
	DistanceToVWMA *float64
}
