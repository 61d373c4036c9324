package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type AiCacheRepository interface {
	Get(symbol string) (*model.AiCache, error)
	List() ([]model.AiCache, error)
	Put(tx *sql.Tx, entry model.AiCache) error
	Delete(symbol string) error
}

type aiCacheRepositoryHandler struct {
	Db *sql.DB
}

func NewAiCacheRepository(db *sql.DB) AiCacheRepository {
	return aiCacheRepositoryHandler{Db: db}
}

// Get returns nil without error when the symbol has no cached analysis.
func (h aiCacheRepositoryHandler) Get(symbol string) (*model.AiCache, error) {
	query := table.AiCache.
		SELECT(table.AiCache.AllColumns).
		WHERE(table.AiCache.Symbol.EQ(postgres.String(symbol)))

	out := model.AiCache{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached analysis for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h aiCacheRepositoryHandler) List() ([]model.AiCache, error) {
	query := table.AiCache.SELECT(table.AiCache.AllColumns)

	result := []model.AiCache{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached analyses: %w", err)
	}

	return result, nil
}

func (h aiCacheRepositoryHandler) Put(tx *sql.Tx, entry model.AiCache) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := putAiCacheQuery(entry).Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert cached analysis for %s: %w", entry.Symbol, err)
	}

	return nil
}

func putAiCacheQuery(entry model.AiCache) postgres.InsertStatement {
	t := table.AiCache
	return t.
		INSERT(t.AllColumns).
		MODEL(entry).
		ON_CONFLICT(t.Symbol).
		DO_UPDATE(
			postgres.SET(
				t.CachedPrice.SET(t.EXCLUDED.CachedPrice),
				t.CachedRsi.SET(t.EXCLUDED.CachedRsi),
				t.CachedVwma.SET(t.EXCLUDED.CachedVwma),
				t.CachedSentiment.SET(t.EXCLUDED.CachedSentiment),
				t.Analysis.SET(t.EXCLUDED.Analysis),
				t.ComputedAt.SET(t.EXCLUDED.ComputedAt),
			),
		)
}

func (h aiCacheRepositoryHandler) Delete(symbol string) error {
	query := table.AiCache.
		DELETE().
		WHERE(table.AiCache.Symbol.EQ(postgres.String(symbol)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete cached analysis for %s: %w", symbol, err)
	}

	return nil
}
