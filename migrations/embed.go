// Package migrations embeds the schema for both storage backends so the
// server and the integration tests apply exactly the same definitions.
package migrations

import "embed"

// Surreal holds the SurrealQL schema files under surrealdb/.
//
//go:embed surrealdb/*.surql
var Surreal embed.FS

// Postgres holds the goose migration files under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS
