package util

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgschema/typespec/internal/logger"
)

// ExecScript runs a SQL script in a single transaction. The script and its
// outcome are logged at debug level.
func ExecScript(ctx context.Context, db *sql.DB, script string, description string) error {
	log := logger.Get()
	if logger.IsDebug() {
		log.Debug("Executing SQL script", "description", description, "sql", script)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", description, err)
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		log.Debug("SQL script failed", "description", description, "error", err)
		return fmt.Errorf("failed to execute %s: %w", description, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", description, err)
	}

	log.Debug("SQL script succeeded", "description", description)
	return nil
}
