// Package ranker merges candidate lists from multiple universes, removes
// duplicate symbols, sorts by decay-adjusted score and assigns dense ranks.
package ranker

import (
	"sort"
	"time"

	"stockscore/internal/domain"
	"stockscore/internal/normalize"
	"stockscore/internal/scoring"
)

const (
	stopATRMultiple  = 1.5
	sellProfitTarget = 1.20
)

// Rank concatenates the candidate lists in input order, dedupes by symbol
// keeping the first occurrence (earlier universes win), applies the news
// decay, sorts descending by adjusted score (stable, so input order breaks
// ties) and assigns ranks 1..N with no gaps. It also fills the derived
// stop/buy/sell price bands.
func Rank(lists [][]domain.ScoredCandidate, policy scoring.NewsDecayPolicy, now time.Time) []domain.ScoredCandidate {
	merged := []domain.ScoredCandidate{}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, c := range list {
			if seen[c.Symbol] {
				continue
			}
			seen[c.Symbol] = true
			merged = append(merged, c)
		}
	}

	for i := range merged {
		merged[i].NewsAgeDays = merged[i].Snapshot.NewsAgeDays(now)
		merged[i].AdjustedScore = scoring.Adjust(merged[i].RawScore, merged[i].NewsAgeDays, policy)

		stop, buy, sell := PriceBands(
			merged[i].Snapshot.Field(domain.FieldCurrentPrice),
			merged[i].Snapshot.Field(domain.FieldATR),
		)
		merged[i].StopPrice = stop
		merged[i].BuyPrice = buy
		merged[i].SellPrice = sell
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AdjustedScore > merged[j].AdjustedScore
	})
	for i := range merged {
		merged[i].Rank = i + 1
	}

	return merged
}

// PriceBands derives the trade levels from current price and ATR:
// stop = price - 1.5xATR, buy = price, sell = 1.20xbuy. Unknown inputs
// propagate to unknown outputs.
func PriceBands(currentPrice, atr *float64) (stop, buy, sell *float64) {
	if currentPrice == nil {
		return nil, nil, nil
	}
	buy = normalize.Round(currentPrice, 2)
	sell = normalize.Round(normalize.FromFloat(*buy * sellProfitTarget), 2)
	if atr != nil {
		stop = normalize.Round(normalize.FromFloat(*currentPrice - stopATRMultiple * *atr), 2)
	}
	return stop, buy, sell
}
