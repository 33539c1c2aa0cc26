package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the fixture tables up to the latest schema version.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migrate: DB is nil")
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migrate: goose up: %w", err)
	}

	return nil
}

// ApplyScript executes a generated bulk-load script on a single connection.
// The script carries its own BEGIN/COMMIT; on failure the open transaction
// is rolled back so the connection is returned clean.
func ApplyScript(ctx context.Context, db *sql.DB, script string) error {
	if db == nil {
		return errors.New("apply script: DB is nil")
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("apply script: acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, script); err != nil {
		_, _ = conn.ExecContext(ctx, "ROLLBACK")
		return fmt.Errorf("apply script: exec: %w", err)
	}

	return nil
}
