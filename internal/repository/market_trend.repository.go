package repository

import (
	"database/sql"
	"fmt"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type MarketTrendRepository interface {
	Upsert(trend model.MarketTrend) error
	Get(symbol string) (*model.MarketTrend, error)
	List() ([]model.MarketTrend, error)
}

type marketTrendRepositoryHandler struct {
	Db *sql.DB
}

func NewMarketTrendRepository(db *sql.DB) MarketTrendRepository {
	return marketTrendRepositoryHandler{Db: db}
}

func (h marketTrendRepositoryHandler) Upsert(trend model.MarketTrend) error {
	_, err := upsertMarketTrendQuery(trend).Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert market trend for %s: %w", trend.Symbol, err)
	}

	return nil
}

func upsertMarketTrendQuery(trend model.MarketTrend) postgres.InsertStatement {
	t := table.MarketTrend
	return t.
		INSERT(t.AllColumns).
		MODEL(trend).
		ON_CONFLICT(t.Symbol).
		DO_UPDATE(
			postgres.SET(
				t.CurrentPrice.SET(t.EXCLUDED.CurrentPrice),
				t.Change1m.SET(t.EXCLUDED.Change1m),
				t.Change3m.SET(t.EXCLUDED.Change3m),
				t.Rsi.SET(t.EXCLUDED.Rsi),
				t.Atr.SET(t.EXCLUDED.Atr),
				t.Ema20.SET(t.EXCLUDED.Ema20),
				t.Vix.SET(t.EXCLUDED.Vix),
				t.RiskOn.SET(t.EXCLUDED.RiskOn),
				t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			),
		)
}

func (h marketTrendRepositoryHandler) Get(symbol string) (*model.MarketTrend, error) {
	query := table.MarketTrend.
		SELECT(table.MarketTrend.AllColumns).
		WHERE(table.MarketTrend.Symbol.EQ(postgres.String(symbol)))

	out := model.MarketTrend{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get market trend for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h marketTrendRepositoryHandler) List() ([]model.MarketTrend, error) {
	query := table.MarketTrend.
		SELECT(table.MarketTrend.AllColumns).
		ORDER_BY(table.MarketTrend.Symbol.ASC())

	result := []model.MarketTrend{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list market trends: %w", err)
	}

	return result, nil
}
