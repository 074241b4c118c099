package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      VARCHAR(50) NOT NULL UNIQUE,
		password      VARCHAR(255) NOT NULL,
		role          VARCHAR(20) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id),
		token       UUID NOT NULL UNIQUE,
		user_agent  TEXT,
		ip_address  VARCHAR(64),
		expires_at  TIMESTAMPTZ NOT NULL,
		revoked_at  TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id          UUID PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		phone       VARCHAR(20) NOT NULL,
		address     VARCHAR(200) NOT NULL,
		job_type    VARCHAR(100) NOT NULL,
		date        VARCHAR(20) NOT NULL,
		status      VARCHAR(20) NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'InProgress', 'Completed')),
		note        TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_date ON customers (date COLLATE "C")`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions (token)`,
}

// EnsureSchema creates the tables if they are missing. It runs in one
// transaction so a half-created schema is never left behind.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
