// Package postgres is the alternate storage backend: pgx implementations of
// the service repository interfaces, selected with DB_DRIVER=postgres.
// Missing records come back as (nil, nil) like the SurrealDB repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fisherfans/api/internal/database"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Open creates a pool for dsn and verifies the server is reachable.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.Open: %w: %v", database.ErrConnection, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.Open: %w: %v", database.ErrConnection, err)
	}
	return pool, nil
}

// validID reports whether id can address a UUID primary key. Anything else
// cannot match a row, so lookups short-circuit instead of failing the cast.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mapWriteError turns a unique violation into database.ErrDuplicate.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, database.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notFound reports whether err means the row did not exist.
func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// where joins filter conditions into a WHERE clause.
func where(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// orEmpty keeps NOT NULL array columns from receiving NULL.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// count runs a single-value COUNT query.
func count(ctx context.Context, q db, op, sql string, args pgx.NamedArgs) (int, error) {
	var n int
	if err := q.QueryRow(ctx, sql, args).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
