package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type postgresSnapshotRepository struct {
	db SQLExecutor
}

func NewPostgresSnapshotRepository(db SQLExecutor) SnapshotRepository {
	return &postgresSnapshotRepository{db: db}
}

func (r *postgresSnapshotRepository) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	query := `SELECT value FROM competition_snapshots WHERE key = $1`
	var raw []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, mapPQError(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrSnapshotCorrupt, key, err)
	}
	return true, nil
}

func (r *postgresSnapshotRepository) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}
	query := `
		INSERT INTO competition_snapshots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return mapPQError(err)
	}
	return nil
}

func (r *postgresSnapshotRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM competition_snapshots WHERE key = $1`
	result, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffectedRows(result, ErrSnapshotNotFound)
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" { // undefined_table
		return fmt.Errorf("%w: %s", ErrSnapshotSchemaMissing, pqErr.Message)
	}
	return err
}
