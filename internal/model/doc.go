// Package model defines domain entities and data structures for the Fisher Fans API.
//
// The model package contains struct definitions for domain objects, request payloads,
// list filters and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
//   - User: a registered account, optionally holding a boat license
//   - Boat: a vessel owned by exactly one user
//   - Trip: a fishing outing published by an organizer against one of their boats
//   - Booking: seats reserved by a renter on a trip, with a derived total price
//   - LogbookEntry: a catch recorded by a user
//
// # JSON Serialization
//
// Models use camelCase json tags. Password digests are tagged json:"-" and never
// leave the process. Money is carried as Money, a decimal rendered as a string
// with two fractional digits:
//
//	{"price": "120.50", "totalPrice": "241.00"}
//
// # Validation
//
// Request types expose Validate() []FieldError. An empty slice means the payload
// is well formed; business rules are enforced later by the service layer.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go. Business rule failures
// add a businessCode extension (PERMIT_REQUIRED, USER_HAS_NO_BOAT).
package model
