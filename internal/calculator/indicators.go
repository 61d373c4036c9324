// Package calculator derives technical indicators from a daily price/volume
// history. Every indicator is optional: a history shorter than the lookback
// window, or a zero divisor, produces nil rather than an error.
package calculator

import (
	"stockscore/internal/domain"
	"stockscore/internal/normalize"

	"github.com/montanaflynn/stats"
)

const (
	rsiPeriod  = 14
	vwmaPeriod = 20
	emaSpan    = 10
	atrPeriod  = 14

	// a trading week is roughly six daily bars back from the latest
	weekLookback = 6
)

// Compute derives the full indicator set from a date-ascending history.
// The window is expected to cover about three months of daily bars; shorter
// windows simply yield nil for the indicators they cannot support.
func Compute(bars []domain.Bar) domain.IndicatorSet {
	out := domain.IndicatorSet{}
	if len(bars) == 0 {
		return out
	}

	closes := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		volumes[i] = b.Volume
	}

	out.CurrentPrice = normalize.FromFloat(closes[len(closes)-1])
	if len(closes) > 1 {
		out.YesterdayClose = normalize.FromFloat(closes[len(closes)-2])
	}
	// a zero or unknown latest close means the bar is bogus (halted listing,
	// partial fetch) - fall back to the prior close so the percent-change
	// chain still works
	if out.CurrentPrice == nil || *out.CurrentPrice == 0 {
		out.CurrentPrice = out.YesterdayClose
	}

	out.Volume = normalize.FromFloat(volumes[len(volumes)-1])

	out.PctChange1D = percentChange(out.CurrentPrice, out.YesterdayClose)
	if len(closes) > weekLookback {
		out.PctChange1W = percentChange(out.CurrentPrice, normalize.FromFloat(closes[len(closes)-weekLookback]))
	}
	out.PctChange1M = percentChange(out.CurrentPrice, normalize.FromFloat(closes[0]))

	out.RSI = rsi(closes, rsiPeriod)
	out.VWMA = vwma(closes, volumes, vwmaPeriod)
	out.EMA = ema(closes, emaSpan)
	out.ATR = rangeATR(bars, atrPeriod)

	if out.ATR != nil && out.CurrentPrice != nil && *out.CurrentPrice != 0 {
		out.RelativeATR = normalize.Round(normalize.FromFloat(*out.ATR / *out.CurrentPrice), 4)
	}
	out.RelativeVolume = relativeVolume(volumes, vwmaPeriod)
	if out.CurrentPrice != nil && out.Volume != nil {
		out.DollarVolume = normalize.Round(normalize.FromFloat(*out.CurrentPrice * *out.Volume), 0)
	}
	if len(bars) > 1 {
		out.GapPct = percentChange(normalize.FromFloat(bars[len(bars)-1].Open), out.YesterdayClose)
	}
	if out.CurrentPrice != nil && out.VWMA != nil {
		out.DistanceToVWMA = normalize.Round(normalize.FromFloat(*out.CurrentPrice - *out.VWMA), 2)
	}

	return out
}

// percentChange returns (current-prior)/prior*100, nil when either side is
// unknown or the prior value is zero.
func percentChange(current, prior *float64) *float64 {
	if current == nil || prior == nil || *prior == 0 {
		return nil
	}
	return normalize.FromFloat((*current - *prior) / *prior * 100)
}

// rsi uses simple rolling means of positive/negative deltas over the
// trailing period. A window with gains but no losses saturates at 100; a
// flat window (no gains, no losses) yields nil.
func rsi(closes []float64, period int) *float64 {
	if len(closes) < period+1 {
		return nil
	}

	gains := make([]float64, 0, period)
	losses := make([]float64, 0, period)
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -delta)
		}
	}

	avgGain, err := stats.Mean(gains)
	if err != nil {
		return nil
	}
	avgLoss, err := stats.Mean(losses)
	if err != nil {
		return nil
	}
	if avgLoss == 0 {
		if avgGain == 0 {
			return nil
		}
		return normalize.FromFloat(100)
	}

	rs := avgGain / avgLoss
	return normalize.FromFloat(100 - (100 / (1 + rs)))
}

func vwma(closes, volumes []float64, period int) *float64 {
	if len(closes) < period {
		return nil
	}

	var priceVolume, volumeSum float64
	for i := len(closes) - period; i < len(closes); i++ {
		priceVolume += closes[i] * volumes[i]
		volumeSum += volumes[i]
	}
	if volumeSum == 0 {
		return nil
	}
	return normalize.FromFloat(priceVolume / volumeSum)
}

// ema is seeded by the first observation, no warm-up adjustment.
func ema(closes []float64, span int) *float64 {
	if len(closes) == 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1)
	value := closes[0]
	for _, c := range closes[1:] {
		value = alpha*c + (1-alpha)*value
	}
	return normalize.FromFloat(value)
}

// rangeATR is the rolling mean of (high-low). This is a deliberate
// simplification of true range (it ignores overnight gaps) kept for
// compatibility with historical scores; the trend pass uses TrueRangeATR.
func rangeATR(bars []domain.Bar, period int) *float64 {
	if len(bars) < period {
		return nil
	}

	ranges := make([]float64, 0, period)
	for i := len(bars) - period; i < len(bars); i++ {
		ranges = append(ranges, bars[i].High-bars[i].Low)
	}
	mean, err := stats.Mean(ranges)
	if err != nil {
		return nil
	}
	return normalize.FromFloat(mean)
}

// TrueRangeATR is the full true-range ATR: mean of
// max(high-low, |high-prevClose|, |low-prevClose|) over the trailing period.
func TrueRangeATR(bars []domain.Bar, period int) *float64 {
	if len(bars) < period+1 {
		return nil
	}

	trueRanges := make([]float64, 0, period)
	for i := len(bars) - period; i < len(bars); i++ {
		highLow := bars[i].High - bars[i].Low
		highClose := abs(bars[i].High - bars[i-1].Close)
		lowClose := abs(bars[i].Low - bars[i-1].Close)
		trueRanges = append(trueRanges, max3(highLow, highClose, lowClose))
	}
	mean, err := stats.Mean(trueRanges)
	if err != nil {
		return nil
	}
	return normalize.FromFloat(mean)
}

// relativeVolume compares the latest volume to the mean of the preceding
// period, excluding the latest bar.
func relativeVolume(volumes []float64, period int) *float64 {
	if len(volumes) < period+1 {
		return nil
	}

	window := volumes[len(volumes)-period-1 : len(volumes)-1]
	mean, err := stats.Mean(window)
	if err != nil || mean == 0 {
		return nil
	}
	return normalize.Round(normalize.FromFloat(volumes[len(volumes)-1]/mean), 2)
}

// PercentChangeOverBars returns the percent change between the latest close
// and the close n bars back, nil on insufficient history.
func PercentChangeOverBars(bars []domain.Bar, n int) *float64 {
	if len(bars) <= n {
		return nil
	}
	current := normalize.FromFloat(bars[len(bars)-1].Close)
	prior := normalize.FromFloat(bars[len(bars)-1-n].Close)
	return percentChange(current, prior)
}

// RSIOverBars exposes the rolling-mean RSI for callers that work on a raw
// bar history rather than a full indicator set.
func RSIOverBars(bars []domain.Bar, period int) *float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return rsi(closes, period)
}

// EMAOverBars exposes the first-observation-seeded EMA with a caller-chosen
// span.
func EMAOverBars(bars []domain.Bar, span int) *float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return ema(closes, span)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
