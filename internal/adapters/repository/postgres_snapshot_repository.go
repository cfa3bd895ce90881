package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

type PostgresSnapshotRepository struct {
	db *sqlx.DB
}

var _ domain.SnapshotRepository = (*PostgresSnapshotRepository)(nil)

func NewPostgresSnapshotRepository(db *sqlx.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

// snapshotRow adapts ProblemRecord for sqlx: array columns need pq types.
type snapshotRow struct {
	Title          string         `db:"title"`
	ProblemID      string         `db:"problem_id"`
	TitleSlug      string         `db:"title_slug"`
	Difficulty     string         `db:"difficulty"`
	Topics         pq.StringArray `db:"topics"`
	Companies      pq.StringArray `db:"companies"`
	DateSolved     string         `db:"date_solved"`
	Language       string         `db:"language"`
	Runtime        float64        `db:"runtime"`
	Memory         float64        `db:"memory"`
	SubmissionID   string         `db:"submission_id"`
	IsPaidOnly     bool           `db:"is_paid_only"`
	Category       string         `db:"category"`
	AcceptanceRate float64        `db:"acceptance_rate"`
	Attempts       int            `db:"attempts"`
	Status         string         `db:"status"`
}

func toRow(r domain.ProblemRecord) snapshotRow {
	return snapshotRow{
		Title:          r.Title,
		ProblemID:      r.ProblemID,
		TitleSlug:      r.TitleSlug,
		Difficulty:     r.Difficulty,
		Topics:         pq.StringArray(r.Topics),
		Companies:      pq.StringArray(r.Companies),
		DateSolved:     r.DateSolved,
		Language:       r.Language,
		Runtime:        r.Runtime,
		Memory:         r.Memory,
		SubmissionID:   r.SubmissionID,
		IsPaidOnly:     r.IsPaidOnly,
		Category:       r.Category,
		AcceptanceRate: r.AcceptanceRate,
		Attempts:       r.Attempts,
		Status:         r.Status,
	}
}

func (row snapshotRow) toRecord() domain.ProblemRecord {
	return domain.ProblemRecord{
		Title:          row.Title,
		ProblemID:      row.ProblemID,
		TitleSlug:      row.TitleSlug,
		Difficulty:     row.Difficulty,
		Topics:         []string(row.Topics),
		Companies:      []string(row.Companies),
		DateSolved:     row.DateSolved,
		Language:       row.Language,
		Runtime:        row.Runtime,
		Memory:         row.Memory,
		SubmissionID:   row.SubmissionID,
		IsPaidOnly:     row.IsPaidOnly,
		Category:       row.Category,
		AcceptanceRate: row.AcceptanceRate,
		Attempts:       row.Attempts,
		Status:         row.Status,
	}
}

// Replace swaps the whole snapshot in one transaction. The snapshot mirrors
// the latest normalized record set, so a full rewrite is the honest shape.
func (r *PostgresSnapshotRepository) Replace(ctx context.Context, records []domain.ProblemRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM problem_snapshot`); err != nil {
		return fmt.Errorf("snapshot: failed to clear: %w", err)
	}

	query := `
		INSERT INTO problem_snapshot (
			title, problem_id, title_slug, difficulty,
			topics, companies, date_solved, language,
			runtime, memory, submission_id, is_paid_only,
			category, acceptance_rate, attempts, status
		) VALUES (
			:title, :problem_id, :title_slug, :difficulty,
			:topics, :companies, :date_solved, :language,
			:runtime, :memory, :submission_id, :is_paid_only,
			:category, :acceptance_rate, :attempts, :status
		)`

	for _, rec := range records {
		if _, err := tx.NamedExecContext(ctx, query, toRow(rec)); err != nil {
			return fmt.Errorf("snapshot: failed to insert %q: %w", rec.Title, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresSnapshotRepository) List(ctx context.Context) ([]domain.ProblemRecord, error) {
	rows := []snapshotRow{}

	query := `
		SELECT title, problem_id, title_slug, difficulty,
		       topics, companies, date_solved, language,
		       runtime, memory, submission_id, is_paid_only,
		       category, acceptance_rate, attempts, status
		FROM problem_snapshot
		ORDER BY (date_solved = ''), date_solved, title`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	records := make([]domain.ProblemRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *PostgresSnapshotRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM problem_snapshot`)
	return count, err
}
