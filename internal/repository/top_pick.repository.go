package repository

import (
	"database/sql"
	"fmt"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TopPickRepository interface {
	Add(tx *sql.Tx, picks []model.TopPick) error
	ListRun(runID uuid.UUID) ([]model.TopPick, error)
	LatestRunID() (*uuid.UUID, error)
}

type topPickRepositoryHandler struct {
	Db *sql.DB
}

func NewTopPickRepository(db *sql.DB) TopPickRepository {
	return topPickRepositoryHandler{Db: db}
}

func (h topPickRepositoryHandler) Add(tx *sql.Tx, picks []model.TopPick) error {
	if len(picks) == 0 {
		return nil
	}

	query := table.TopPick.
		INSERT(table.TopPick.AllColumns).
		MODELS(picks)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert top picks: %w", err)
	}

	return nil
}

func (h topPickRepositoryHandler) ListRun(runID uuid.UUID) ([]model.TopPick, error) {
	query := table.TopPick.
		SELECT(table.TopPick.AllColumns).
		WHERE(table.TopPick.RunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.TopPick.Rank.ASC())

	result := []model.TopPick{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list top picks for run %s: %w", runID.String(), err)
	}

	return result, nil
}

func (h topPickRepositoryHandler) LatestRunID() (*uuid.UUID, error) {
	query := table.TopPick.
		SELECT(table.TopPick.RunID).
		ORDER_BY(table.TopPick.CreatedAt.DESC()).
		LIMIT(1)

	out := model.TopPick{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest top picks run: %w", err)
	}

	return &out.RunID, nil
}
