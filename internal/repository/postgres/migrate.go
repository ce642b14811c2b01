package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS cat_sightings (
	id          BIGSERIAL PRIMARY KEY,
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	address     TEXT,
	description TEXT,
	cat_name    TEXT,
	image_url   TEXT,
	source      TEXT NOT NULL DEFAULT 'map'
	            CONSTRAINT cat_sightings_source_check CHECK (source IN ('map', 'address')),
	spotted_at  TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// addSpottedAtSQL upgrades tables created before the spotted_at column existed.
const addSpottedAtSQL = `
ALTER TABLE cat_sightings ADD COLUMN IF NOT EXISTS spotted_at TIMESTAMPTZ`

// Migrate brings the cat_sightings table to the current shape. Every
// statement is idempotent; the outcome is logged explicitly either way.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.logger.Error("Migration failed: create cat_sightings", zap.Error(err))
		return fmt.Errorf("create cat_sightings: %w", err)
	}

	if _, err := db.ExecContext(ctx, addSpottedAtSQL); err != nil {
		db.logger.Error("Migration failed: add spotted_at column", zap.Error(err))
		return fmt.Errorf("add spotted_at column: %w", err)
	}

	db.logger.Info("Migrations applied", zap.String("table", "cat_sightings"))
	return nil
}
