package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Open builds a pool for the hosted Postgres. Connections are made lazily,
// so an unreachable database is reported by the first query, not here;
// only a malformed url fails.
func Open(ctx context.Context, url string) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return p, nil
}

// Execer is the part of a pool EnsureSchema needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the projects table when it does not exist yet.
// The hosted schema is normally managed from the service dashboard, so this
// only runs for local development databases.
func EnsureSchema(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT,
    difficulty   TEXT,
    cost         NUMERIC CHECK (cost IS NULL OR cost >= 0),
    is_published BOOLEAN NOT NULL DEFAULT true,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS projects_published_created_idx
    ON projects (created_at DESC) WHERE is_published;
`
