package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The plan document is stored whole as JSON; the summary columns are
	// denormalized copies so listing never has to decode documents.
	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'draft',
		version      INTEGER NOT NULL DEFAULT 0,
		last_updated TEXT NOT NULL,
		document     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_last_updated ON plans(last_updated)`,
}
