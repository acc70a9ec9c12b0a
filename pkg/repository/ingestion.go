package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habrdigest/habrdigest/pkg/domain"
)

// IngestionRepository handles ingestion run audit records
type IngestionRepository struct {
	db *sqlx.DB
}

// ingestionRunSQL represents an ingestion run for SQL operations
type ingestionRunSQL struct {
	ID                int64      `db:"id"`
	StartedAt         time.Time  `db:"started_at"`
	FinishedAt        *time.Time `db:"finished_at"`
	ArticlesFound     int        `db:"articles_found"`
	ArticlesProcessed int        `db:"articles_processed"`
	Status            string     `db:"status"`
	Error             string     `db:"error"`
}

// NewIngestionRepository creates a new ingestion repository
func NewIngestionRepository(database *sqlx.DB) *IngestionRepository {
	return &IngestionRepository{db: database}
}

// StartRun creates a run record in running state and returns its ID
func (r *IngestionRepository) StartRun(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO ingestion_runs (status) VALUES (?)", domain.RunStatusRunning)
	if err != nil {
		return 0, fmt.Errorf("start ingestion run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get insert id: %w", err)
	}
	return id, nil
}

// CompleteRun finalizes a run with counts
func (r *IngestionRepository) CompleteRun(ctx context.Context, id int64, found, processed int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE ingestion_runs
		SET finished_at = CURRENT_TIMESTAMP, articles_found = ?, articles_processed = ?, status = ?
		WHERE id = ?
	`, found, processed, domain.RunStatusCompleted, id)
	if err != nil {
		return fmt.Errorf("complete ingestion run: %w", err)
	}
	return nil
}

// FailRun finalizes a run with an error message
func (r *IngestionRepository) FailRun(ctx context.Context, id int64, errMsg string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE ingestion_runs
		SET finished_at = CURRENT_TIMESTAMP, status = ?, error = ?
		WHERE id = ?
	`, domain.RunStatusFailed, errMsg, id)
	if err != nil {
		return fmt.Errorf("fail ingestion run: %w", err)
	}
	return nil
}

// GetRecentRuns returns the most recent runs, newest first
func (r *IngestionRepository) GetRecentRuns(ctx context.Context, limit int) ([]*domain.IngestionRun, error) {
	var sqlRuns []ingestionRunSQL
	err := r.db.SelectContext(ctx, &sqlRuns,
		"SELECT * FROM ingestion_runs ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("get recent runs: %w", err)
	}

	runs := make([]*domain.IngestionRun, len(sqlRuns))
	for i, run := range sqlRuns {
		runs[i] = &domain.IngestionRun{
			ID:                run.ID,
			StartedAt:         run.StartedAt,
			FinishedAt:        run.FinishedAt,
			ArticlesFound:     run.ArticlesFound,
			ArticlesProcessed: run.ArticlesProcessed,
			Status:            run.Status,
			Error:             run.Error,
		}
	}
	return runs, nil
}

// CleanupOldRuns deletes run records started before the cutoff
func (r *IngestionRepository) CleanupOldRuns(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM ingestion_runs WHERE started_at < ?", olderThan)
	if err != nil {
		return 0, fmt.Errorf("cleanup old runs: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}
