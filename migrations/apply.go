package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/pressly/goose/v3"

	"github.com/fisherfans/api/internal/database"
)

// SurrealFiles returns the SurrealQL schema statements in file-name order.
func SurrealFiles() ([]string, error) {
	names, err := fs.Glob(Surreal, "surrealdb/*.surql")
	if err != nil {
		return nil, fmt.Errorf("listing surreal migrations: %w", err)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(Surreal, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		out = append(out, string(content))
	}
	return out, nil
}

// ApplySurreal runs every schema file against db. The statements are
// idempotent (DEFINE ... IF NOT EXISTS) so this is safe on every start.
func ApplySurreal(ctx context.Context, db database.Database) error {
	files, err := SurrealFiles()
	if err != nil {
		return err
	}
	for i, content := range files {
		if err := db.Execute(ctx, content, nil); err != nil {
			return fmt.Errorf("surreal migration %d: %w", i+1, err)
		}
	}
	slog.Info("surrealdb schema applied", "files", len(files))
	return nil
}

// PostgresProvider builds a goose provider over the embedded Postgres files.
func PostgresProvider(db *sql.DB) (*goose.Provider, error) {
	sub, err := fs.Sub(Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("postgres migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return provider, nil
}

// ApplyPostgres applies all pending goose migrations.
func ApplyPostgres(ctx context.Context, db *sql.DB) error {
	provider, err := PostgresProvider(db)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("postgres migrations applied", "count", len(results))
	return nil
}
