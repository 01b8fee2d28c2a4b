// Package fixtures provides test data factories.
//
// A Factory writes through the service repository interfaces, so the same
// fixtures populate the in-memory store, SurrealDB and Postgres:
//
//	f := fixtures.New(fixtures.Repos{Users: ..., Boats: ...})
//	owner := f.CreateSkipper(t)
//	boat := f.CreateBoat(t, owner, fixtures.At(43.58, 7.12))
//	trip := f.CreateTrip(t, owner, boat)
//	booking := f.CreateBooking(t, f.CreateUser(t), trip, 2)
//
// Every factory method takes option functions that edit the model before it
// is stored.
package fixtures
