package calculator

import (
	"testing"
	"time"

	"stockscore/internal/domain"

	"github.com/stretchr/testify/require"
)

func syntheticBars(closes []float64) []domain.Bar {
	bars := make([]domain.Bar, len(closes))
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = domain.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return bars
}

func TestCompute_RSIBounds(t *testing.T) {
	t.Run("oscillating series stays in bounds", func(t *testing.T) {
		closes := make([]float64, 40)
		for i := range closes {
			closes[i] = 100 + float64(i%5)
		}
		set := Compute(syntheticBars(closes))
		require.NotNil(t, set.RSI)
		require.GreaterOrEqual(t, *set.RSI, 0.0)
		require.LessOrEqual(t, *set.RSI, 100.0)
	})

	t.Run("monotonic gains saturate at 100", func(t *testing.T) {
		closes := make([]float64, 30)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		set := Compute(syntheticBars(closes))
		require.NotNil(t, set.RSI)
		require.Equal(t, 100.0, *set.RSI)
	})

	t.Run("flat window yields unknown", func(t *testing.T) {
		closes := make([]float64, 30)
		for i := range closes {
			closes[i] = 100
		}
		set := Compute(syntheticBars(closes))
		require.Nil(t, set.RSI)
	})

	t.Run("too short for lookback", func(t *testing.T) {
		set := Compute(syntheticBars([]float64{100, 101, 102}))
		require.Nil(t, set.RSI)
	})
}

func TestCompute_VWMA(t *testing.T) {
	t.Run("constant price and volume", func(t *testing.T) {
		closes := make([]float64, 25)
		for i := range closes {
			closes[i] = 50
		}
		set := Compute(syntheticBars(closes))
		require.NotNil(t, set.VWMA)
		require.InDelta(t, 50, *set.VWMA, 1e-9)
	})

	t.Run("short history yields unknown", func(t *testing.T) {
		set := Compute(syntheticBars([]float64{1, 2, 3, 4, 5}))
		require.Nil(t, set.VWMA)
		require.Nil(t, set.RelativeVolume)
	})
}

func TestCompute_EMASeededByFirstObservation(t *testing.T) {
	set := Compute(syntheticBars([]float64{100}))
	require.NotNil(t, set.EMA)
	require.Equal(t, 100.0, *set.EMA)

	// two bars: alpha = 2/11
	set = Compute(syntheticBars([]float64{100, 111}))
	require.NotNil(t, set.EMA)
	require.InDelta(t, 100+11*(2.0/11), *set.EMA, 1e-9)
}

func TestCompute_ATRAndRelatives(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	set := Compute(syntheticBars(closes))

	// every bar spans high-low of exactly 2
	require.NotNil(t, set.ATR)
	require.InDelta(t, 2, *set.ATR, 1e-9)

	require.NotNil(t, set.RelativeATR)
	require.InDelta(t, 0.02, *set.RelativeATR, 1e-9)

	require.NotNil(t, set.DollarVolume)
	require.InDelta(t, 100*1_000_000, *set.DollarVolume, 1e-9)

	require.NotNil(t, set.RelativeVolume)
	require.InDelta(t, 1.0, *set.RelativeVolume, 1e-9)
}

func TestCompute_PercentChanges(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 105, 105, 105, 105, 105, 110}
	set := Compute(syntheticBars(closes))

	require.NotNil(t, set.PctChange1D)
	require.InDelta(t, (110.0-105)/105*100, *set.PctChange1D, 1e-9)

	require.NotNil(t, set.PctChange1W)
	// six bars back from the latest
	require.InDelta(t, (110.0-105)/105*100, *set.PctChange1W, 1e-9)

	require.NotNil(t, set.PctChange1M)
	require.InDelta(t, 10, *set.PctChange1M, 1e-9)

	require.NotNil(t, set.GapPct)
	require.InDelta(t, (110.0-105)/105*100, *set.GapPct, 1e-9)
}

func TestCompute_ZeroCloseFallsBackToPriorClose(t *testing.T) {
	closes := []float64{100, 102, 0}
	set := Compute(syntheticBars(closes))

	require.NotNil(t, set.CurrentPrice)
	require.Equal(t, 102.0, *set.CurrentPrice)

	// 1-day change is measured against yesterday's close, which is now the
	// substituted current price
	require.NotNil(t, set.PctChange1D)
	require.InDelta(t, 0, *set.PctChange1D, 1e-9)
}

func TestCompute_EmptyHistory(t *testing.T) {
	set := Compute(nil)
	require.Nil(t, set.CurrentPrice)
	require.Nil(t, set.RSI)
	require.Nil(t, set.VWMA)
	require.Nil(t, set.EMA)
}

func TestTrueRangeATR(t *testing.T) {
	bars := syntheticBars([]float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100})
	atr := TrueRangeATR(bars, 14)
	require.NotNil(t, atr)
	// high-low of 2 dominates the gap terms on a flat series
	require.InDelta(t, 2, *atr, 1e-9)

	require.Nil(t, TrueRangeATR(bars[:10], 14))
}

func TestPercentChangeOverBars(t *testing.T) {
	bars := syntheticBars([]float64{100, 110, 121})
	v := PercentChangeOverBars(bars, 2)
	require.NotNil(t, v)
	require.InDelta(t, 21, *v, 1e-9)

	require.Nil(t, PercentChangeOverBars(bars, 3))
}
