package repository

import (
	"strings"
	"testing"

	"stockscore/internal/db/models/postgres/public/model"

	"github.com/stretchr/testify/require"
)

// The conflict clauses must assign each mutable column from the incoming
// row individually; counting the excluded references pins that down without
// coupling the tests to go-jet's exact rendering.

func TestUpsertUniverseTickersQuery(t *testing.T) {
	sql, _ := upsertUniverseTickersQuery([]model.UniverseTicker{
		{Universe: "LargeCap", Symbol: "AAA"},
	}).Sql()

	require.Contains(t, sql, "ON CONFLICT")
	require.Contains(t, sql, "DO UPDATE")
	// every column except the (universe, symbol) key
	require.Equal(t, 31, strings.Count(sql, "excluded"))
}

func TestPutAiCacheQuery(t *testing.T) {
	sql, _ := putAiCacheQuery(model.AiCache{Symbol: "AAA"}).Sql()

	require.Contains(t, sql, "ON CONFLICT")
	require.Contains(t, sql, "DO UPDATE")
	require.Equal(t, 6, strings.Count(sql, "excluded"))
}

func TestUpsertMarketTrendQuery(t *testing.T) {
	sql, _ := upsertMarketTrendQuery(model.MarketTrend{Symbol: "SPY"}).Sql()

	require.Contains(t, sql, "ON CONFLICT")
	require.Contains(t, sql, "DO UPDATE")
	require.Equal(t, 9, strings.Count(sql, "excluded"))
}
