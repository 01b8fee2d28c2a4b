// Package service implements the trust and business logic layer of the Fisher Fans API.
//
// Every mutation passes through the same gates before storage is touched:
//
//   - SessionResolver turns a bearer token into the acting user
//   - EligibilityGate enforces creation-time business rules (license, boat ownership)
//   - CanModify restricts mutations to the owning user, after existence is confirmed
//   - PricingEngine derives booking totals with exact decimal arithmetic
//   - GeoRangeFilter applies the all-or-nothing bounding box to boat searches
//   - ErasureService anonymizes a departing user without deleting the row
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods take the acting user's id explicitly; no request state is read from context
//   - Errors are sentinel errors from errors.go, optionally wrapped for detail
//
// # Repository Interfaces
//
// Repository contracts are declared in repositories.go and implemented by
// internal/repository (SurrealDB), internal/repository/postgres and the
// in-memory store used by tests.
//
// # Check Ordering
//
// Not found is always decided before ownership, so a caller probing ids of
// other users' resources learns nothing beyond what a 404 already says.
//
//	boat, err := boatService.Update(ctx, actorID, boatID, req)
//	switch {
//	case errors.Is(err, service.ErrBoatNotFound): // 404
//	case errors.Is(err, service.ErrForbidden):    // 403
//	}
package service
