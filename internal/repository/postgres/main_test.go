package postgres_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/fisherfans/api/internal/testing/testdb"
	"github.com/fisherfans/api/migrations"
)

// TestMain applies the goose migrations once before the package's tests run.
// Without TEST_DATABASE_URL every test skips itself.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	db := testdb.MustOpenSQLDB(dsn)
	if err := migrations.ApplyPostgres(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
