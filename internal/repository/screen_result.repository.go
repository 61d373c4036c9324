package repository

import (
	"database/sql"
	"fmt"
	"stockscore/internal/db/models/postgres/public/model"
	"stockscore/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type ScreenResultRepository interface {
	Replace(tx *sql.Tx, sheet string, rows []model.ScreenResult) error
	List(sheet string) ([]model.ScreenResult, error)
}

type screenResultRepositoryHandler struct {
	Db *sql.DB
}

func NewScreenResultRepository(db *sql.DB) ScreenResultRepository {
	return screenResultRepositoryHandler{Db: db}
}

// Replace clears the sheet and writes the new result set in one transaction.
func (h screenResultRepositoryHandler) Replace(tx *sql.Tx, sheet string, rows []model.ScreenResult) error {
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = h.Db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin screen result tx: %w", err)
		}
		defer tx.Rollback()
	}

	deleteQuery := table.ScreenResult.
		DELETE().
		WHERE(table.ScreenResult.Sheet.EQ(postgres.String(sheet)))

	_, err := deleteQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear screen results for %s: %w", sheet, err)
	}

	if len(rows) > 0 {
		insertQuery := table.ScreenResult.
			INSERT(table.ScreenResult.AllColumns).
			MODELS(rows)

		_, err = insertQuery.Exec(tx)
		if err != nil {
			return fmt.Errorf("failed to insert screen results for %s: %w", sheet, err)
		}
	}

	if ownTx {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("failed to commit screen results for %s: %w", sheet, err)
		}
	}

	return nil
}

func (h screenResultRepositoryHandler) List(sheet string) ([]model.ScreenResult, error) {
	query := table.ScreenResult.
		SELECT(table.ScreenResult.AllColumns).
		WHERE(table.ScreenResult.Sheet.EQ(postgres.String(sheet))).
		ORDER_BY(table.ScreenResult.Symbol.ASC())

	result := []model.ScreenResult{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list screen results for %s: %w", sheet, err)
	}

	return result, nil
}
