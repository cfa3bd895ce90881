package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

type PostgresSyncRunRepository struct {
	db *sqlx.DB
}

var _ domain.SyncRunRepository = (*PostgresSyncRunRepository)(nil)

func NewPostgresSyncRunRepository(db *sqlx.DB) *PostgresSyncRunRepository {
	return &PostgresSyncRunRepository{db: db}
}

func (r *PostgresSyncRunRepository) Create(ctx context.Context, run *domain.SyncRun) error {
	query := `
		INSERT INTO sync_runs (
			id, mode, trigger, total_problems, new_problems,
			errors, status, started_at, finished_at
		) VALUES (
			:id, :mode, :trigger, :total_problems, :new_problems,
			:errors, :status, :started_at, :finished_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, run)
	return err
}

func (r *PostgresSyncRunRepository) Update(ctx context.Context, run *domain.SyncRun) error {
	query := `
		UPDATE sync_runs
		SET total_problems = :total_problems,
		    new_problems = :new_problems,
		    errors = :errors,
		    status = :status,
		    finished_at = :finished_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, run)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSyncRunNotFound
	}
	return nil
}

func (r *PostgresSyncRunRepository) Latest(ctx context.Context) (*domain.SyncRun, error) {
	var run domain.SyncRun
	query := `SELECT * FROM sync_runs ORDER BY started_at DESC LIMIT 1`

	err := r.db.GetContext(ctx, &run, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSyncRunNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (r *PostgresSyncRunRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.SyncRun, error) {
	runs := []*domain.SyncRun{}

	query := `
		SELECT * FROM sync_runs
		WHERE started_at > $1
		ORDER BY started_at DESC`

	if err := r.db.SelectContext(ctx, &runs, query, since); err != nil {
		return nil, err
	}
	return runs, nil
}
