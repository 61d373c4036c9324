package repository

import (
	"database/sql"
	"fmt"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type UniverseTickerRepository interface {
	Get(universe, symbol string) (*model.UniverseTicker, error)
	List(universe string) ([]model.UniverseTicker, error)
	ListAll() ([]model.UniverseTicker, error)
	Upsert(tx *sql.Tx, rows []model.UniverseTicker) error
	Symbols(universe string) ([]string, error)
}

type universeTickerRepositoryHandler struct {
	Db *sql.DB
}

func NewUniverseTickerRepository(db *sql.DB) UniverseTickerRepository {
	return universeTickerRepositoryHandler{Db: db}
}

func (h universeTickerRepositoryHandler) Get(universe, symbol string) (*model.UniverseTicker, error) {
	query := table.UniverseTicker.
		SELECT(table.UniverseTicker.AllColumns).
		WHERE(postgres.AND(
			table.UniverseTicker.Universe.EQ(postgres.String(universe)),
			table.UniverseTicker.Symbol.EQ(postgres.String(symbol)),
		))

	out := model.UniverseTicker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get universe ticker %s/%s: %w", universe, symbol, err)
	}

	return &out, nil
}

func (h universeTickerRepositoryHandler) List(universe string) ([]model.UniverseTicker, error) {
	query := table.UniverseTicker.
		SELECT(table.UniverseTicker.AllColumns).
		WHERE(table.UniverseTicker.Universe.EQ(postgres.String(universe))).
		ORDER_BY(table.UniverseTicker.Symbol.ASC())

	result := []model.UniverseTicker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe %s: %w", universe, err)
	}

	return result, nil
}

func (h universeTickerRepositoryHandler) ListAll() ([]model.UniverseTicker, error) {
	query := table.UniverseTicker.
		SELECT(table.UniverseTicker.AllColumns).
		ORDER_BY(table.UniverseTicker.Universe.ASC(), table.UniverseTicker.Symbol.ASC())

	result := []model.UniverseTicker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe tickers: %w", err)
	}

	return result, nil
}

func (h universeTickerRepositoryHandler) Symbols(universe string) ([]string, error) {
	query := table.UniverseTicker.
		SELECT(table.UniverseTicker.Symbol).
		WHERE(table.UniverseTicker.Universe.EQ(postgres.String(universe))).
		ORDER_BY(table.UniverseTicker.Symbol.ASC())

	rows := []model.UniverseTicker{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe symbols: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Symbol)
	}

	return out, nil
}

func (h universeTickerRepositoryHandler) Upsert(tx *sql.Tx, rows []model.UniverseTicker) error {
	if len(rows) == 0 {
		return nil
	}

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := upsertUniverseTickersQuery(rows).Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert universe tickers: %w", err)
	}

	return nil
}

func upsertUniverseTickersQuery(rows []model.UniverseTicker) postgres.InsertStatement {
	t := table.UniverseTicker
	return t.
		INSERT(t.AllColumns).
		MODELS(rows).
		ON_CONFLICT(t.Universe, t.Symbol).
		DO_UPDATE(
			postgres.SET(
				t.Name.SET(t.EXCLUDED.Name),
				t.Industry.SET(t.EXCLUDED.Industry),
				t.MarketCap.SET(t.EXCLUDED.MarketCap),
				t.PeRatio.SET(t.EXCLUDED.PeRatio),
				t.CurrentPrice.SET(t.EXCLUDED.CurrentPrice),
				t.YesterdayClose.SET(t.EXCLUDED.YesterdayClose),
				t.PctChange1d.SET(t.EXCLUDED.PctChange1d),
				t.PctChange1w.SET(t.EXCLUDED.PctChange1w),
				t.PctChange1m.SET(t.EXCLUDED.PctChange1m),
				t.Volume.SET(t.EXCLUDED.Volume),
				t.Rsi.SET(t.EXCLUDED.Rsi),
				t.Vwma.SET(t.EXCLUDED.Vwma),
				t.Ema.SET(t.EXCLUDED.Ema),
				t.Atr.SET(t.EXCLUDED.Atr),
				t.RelativeAtr.SET(t.EXCLUDED.RelativeAtr),
				t.RelativeVolume.SET(t.EXCLUDED.RelativeVolume),
				t.DollarVolume.SET(t.EXCLUDED.DollarVolume),
				t.GapPct.SET(t.EXCLUDED.GapPct),
				t.DistanceToVwma.SET(t.EXCLUDED.DistanceToVwma),
				t.PositiveRating.SET(t.EXCLUDED.PositiveRating),
				t.NegativeRating.SET(t.EXCLUDED.NegativeRating),
				t.SentimentRatio.SET(t.EXCLUDED.SentimentRatio),
				t.LatestNewsDate.SET(t.EXCLUDED.LatestNewsDate),
				t.Score.SET(t.EXCLUDED.Score),
				t.Category.SET(t.EXCLUDED.Category),
				t.EarningsDate.SET(t.EXCLUDED.EarningsDate),
				t.Eps.SET(t.EXCLUDED.Eps),
				t.RevenueGrowth.SET(t.EXCLUDED.RevenueGrowth),
				t.DebtToEquity.SET(t.EXCLUDED.DebtToEquity),
				t.EarningsSurprise.SET(t.EXCLUDED.EarningsSurprise),
				t.FetchedAt.SET(t.EXCLUDED.FetchedAt),
			),
		)
}
