package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// results table keeps a single row with id 1.
type sqlResults struct {
	db *sqlx.DB
}

func NewSQLiteResultsRepository(db *sqlx.DB) ResultsRepository {
	return &sqlResults{
		db: db,
	}
}

func (that *sqlResults) Get(ctx context.Context) (*entity.Results, error) {
	var results entity.Results

	err := that.db.GetContext(ctx, &results, `SELECT wins, losses, ties FROM results WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Results{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	return &results, nil
}

func (that *sqlResults) Save(ctx context.Context, results *entity.Results) error {
	query := `INSERT INTO results (id, wins, losses, ties) VALUES (1, :wins, :losses, :ties)
		ON CONFLICT(id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, ties = excluded.ties`

	if _, err := that.db.NamedExecContext(ctx, query, results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	return nil
}

func (that *sqlResults) Reset(ctx context.Context) error {
	if _, err := that.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}

	return nil
}
