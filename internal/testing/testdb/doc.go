// Package testdb provides storage fixtures for integration tests.
//
// SurrealDB tests call New, which connects to TEST_DB_HOST, creates a
// throwaway namespace and applies the embedded schema:
//
//	func TestBoatRepository(t *testing.T) {
//	    tdb := testdb.New(t)
//	    repo := repository.NewBoatRepository(tdb.DB)
//	}
//
// Postgres tests call NewTx, which opens TEST_DATABASE_URL and returns a
// transaction rolled back on cleanup. Apply goose migrations once in
// TestMain with MustOpenSQLDB and migrations.ApplyPostgres.
//
// Every helper skips the test when its environment variable is unset.
package testdb
