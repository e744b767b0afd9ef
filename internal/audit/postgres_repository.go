package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS relay_audit (
    id          UUID PRIMARY KEY,
    request_id  TEXT NOT NULL,
    caller      TEXT NOT NULL DEFAULT '',
    method      TEXT NOT NULL,
    route       TEXT NOT NULL,
    status      INTEGER NOT NULL,
    latency_ms  BIGINT NOT NULL,
    error       TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS relay_audit_created_at_idx ON relay_audit (created_at DESC);`

// PostgresRepository stores audit entries in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the audit table if it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create relay_audit: %w", err)
	}
	return nil
}

// Insert writes a single audit entry.
func (r *PostgresRepository) Insert(ctx context.Context, e Entry) error {
	_, err := r.db.Exec(ctx, `INSERT INTO relay_audit
        (id, request_id, caller, method, route, status, latency_ms, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.RequestID, e.Caller, e.Method, e.Route, e.Status, e.LatencyMS, e.Error, e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, request_id, caller, method, route, status, latency_ms, error, created_at
        FROM relay_audit ORDER BY created_at DESC LIMIT $1`, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Caller, &e.Method, &e.Route, &e.Status, &e.LatencyMS, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return out, nil
}
