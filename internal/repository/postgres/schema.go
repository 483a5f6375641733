package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS developers (
	email        TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	current_city TEXT NOT NULL,
	phone_number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	date        TIMESTAMPTZ NOT NULL,
	event_type  SMALLINT NOT NULL CHECK (event_type IN (1, 2)),
	city        TEXT,
	country     TEXT,
	latitude    DOUBLE PRECISION,
	longitude   DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS invites (
	id              BIGSERIAL PRIMARY KEY,
	event_id        BIGINT NOT NULL REFERENCES events (id),
	developer_email TEXT NOT NULL REFERENCES developers (email),
	status          SMALLINT NOT NULL DEFAULT 0,
	UNIQUE (event_id, developer_email)
);
`

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
