// Package middleware provides HTTP middleware for the Fisher Fans API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one structured slog line per request
//   - Recovery: turns panics into a 500 problem response
//   - CORS: preflight and origin handling
//   - RequireAuth / OptionalAuth: resolve the bearer session into a user
//
// # Authentication
//
// The auth middleware resolves the bearer token through a SessionResolver
// and stores the full user in the request context:
//
//	router.With(middleware.RequireAuth(resolver)).Get("/auth/v1/me", h.Me)
//
// Handlers read it back with CurrentUser(ctx) or GetUserID(ctx). Expired,
// invalid and orphaned sessions are rejected with distinct problem codes.
package middleware
