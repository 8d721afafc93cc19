package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.sql
var migrationFiles embed.FS

// ErrMigration возвращается при ошибке применения миграций
var ErrMigration = errors.New("migrations: failed to apply")

// Advisory lock разводит конкурентные запуски миграций между репликами
const advisoryLockID int64 = 730115042

// Apply применяет встроенные SQL миграции в порядке имен файлов.
// Повторный запуск пропускает уже примененные миграции.
func Apply(ctx context.Context, db *sql.DB) error {
	entries, err := migrationFiles.ReadDir(".")
	if err != nil {
		return fmt.Errorf("%w: read embedded files: %v", ErrMigration, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %v", ErrMigration, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockID); err != nil {
		return fmt.Errorf("%w: acquire migration lock: %v", ErrMigration, err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockID)
	}()

	if _, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return fmt.Errorf("%w: ensure schema_migrations: %v", ErrMigration, err)
	}

	for _, name := range names {
		var applied bool
		err := conn.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("%w: check migration %s: %v", ErrMigration, name, err)
		}
		if applied {
			continue
		}

		sqlBytes, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: read migration %s: %v", ErrMigration, name, err)
		}

		statements := strings.TrimSpace(string(sqlBytes))
		if statements == "" {
			continue
		}

		if _, err := conn.ExecContext(ctx, statements); err != nil {
			return fmt.Errorf("%w: exec migration %s: %v", ErrMigration, name, err)
		}

		if _, err := conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("%w: record migration %s: %v", ErrMigration, name, err)
		}
	}

	return nil
}
