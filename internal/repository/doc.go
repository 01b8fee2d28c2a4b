// Package repository implements the SurrealDB data access layer.
//
// Each repository struct implements one of the service repository interfaces
// for a single table: user, boat, trip, booking and logbook_entry.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Missing records come back as (nil, nil); the service decides what that means
//   - Unique index violations are returned as database.ErrDuplicate
//   - Update rewrites every mutable field; a nil optional is stored as NONE
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax
//   - type::thing("table", $id) so record keys are the application uuids
//   - time::now() for created_on and updated_on
//   - Money is stored as a decimal string and compared with a <decimal> cast
//
// The Postgres backend in the postgres subpackage implements the same
// interfaces and is selected with DB_DRIVER=postgres.
package repository
