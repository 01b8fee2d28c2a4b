// Package config loads and validates the Fisher Fans API configuration.
//
// Values come from environment variables. An optional .env file in the
// working directory is merged first; variables already set take precedence.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: listen port, timeouts, CORS origins, API prefix, log level
//   - DatabaseConfig: storage driver (surrealdb or postgres) and its connection settings
//   - JWTConfig: session signing secret, lifetime and issuer
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP port (default: 8443)
//	SERVER_ENV            - development, production or test
//	CORS_ALLOWED_ORIGINS  - comma separated origins (default: *)
//	API_PREFIX            - mount point for the API (default: /api)
//	LOG_LEVEL             - debug, info, warn or error
//	DB_DRIVER             - surrealdb (default) or postgres
//	DB_HOST, DB_PORT      - SurrealDB address
//	DB_NAMESPACE          - SurrealDB namespace (default: fisherfans)
//	DB_DATABASE           - SurrealDB database
//	DB_USER, DB_PASSWORD  - SurrealDB credentials
//	DATABASE_URL          - Postgres connection string, required for postgres
//	DB_MIGRATE            - apply migrations at startup (default: true)
//	JWT_SECRET            - HMAC signing secret; the default is refused in production
//	JWT_EXPIRES_IN        - session lifetime in seconds (default: 3600)
//	JWT_ISSUER            - iss claim (default: fisherfans-api)
package config
