// Package database provides SurrealDB connectivity for the Fisher Fans API.
//
// The Database interface abstracts SurrealDB operations so repositories stay
// independent of the client library:
//
//   - Query: Returns one {status, result} entry per statement
//   - QueryOne: Returns the first record of the first statement
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Repositories translate ErrNotFound into a (nil, nil) result and unique index
// violations into ErrDuplicate. The Postgres backend in repository/postgres
// maps its driver errors onto the same sentinels.
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, `SELECT * FROM type::thing("boat", $id)`, map[string]interface{}{"id": boatID})
package database
