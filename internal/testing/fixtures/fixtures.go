package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// DefaultPassword is the plaintext behind every fixture user's hash.
const DefaultPassword = "testpass123"

// Repos is the storage a Factory writes through
type Repos struct {
	Users    service.UserRepository
	Boats    service.BoatRepository
	Trips    service.TripRepository
	Bookings service.BookingRepository
	Logbook  service.LogbookRepository
}

// Factory creates test entities through the repositories
type Factory struct {
	repos Repos
	seq   int
}

// New creates a new fixture factory
func New(repos Repos) *Factory {
	return &Factory{repos: repos}
}

func (f *Factory) next() int {
	f.seq++
	return f.seq
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// CreateUser creates an individual user without a boat license
func (f *Factory) CreateUser(t *testing.T, opts ...func(*model.User)) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hashed := string(hash)
	n := f.next()

	u := &model.User{
		ID:           uuid.New().String(),
		LastName:     fmt.Sprintf("Martin%d", n),
		FirstName:    "Jean",
		Email:        fmt.Sprintf("user_%d_%s@test.local", n, uuid.New().String()[:8]),
		PasswordHash: &hashed,
		City:         "Antibes",
		Status:       model.UserStatusIndividual,
		Languages:    []string{"fr"},
	}
	for _, fn := range opts {
		fn(u)
	}

	if err := f.repos.Users.Create(ctx(t), u); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return u
}

// CreateSkipper creates a user holding a boat license
func (f *Factory) CreateSkipper(t *testing.T, opts ...func(*model.User)) *model.User {
	t.Helper()
	license := "12345678"
	return f.CreateUser(t, append([]func(*model.User){func(u *model.User) {
		u.BoatLicenseNumber = &license
	}}, opts...)...)
}

// ============================================================================
// Boat Fixtures
// ============================================================================

// CreateBoat creates a cabin boat owned by owner
func (f *Factory) CreateBoat(t *testing.T, owner *model.User, opts ...func(*model.Boat)) *model.Boat {
	t.Helper()

	b := &model.Boat{
		ID:          uuid.New().String(),
		Name:        fmt.Sprintf("Boat %d", f.next()),
		BoatType:    model.BoatTypeCabin,
		Equipment:   []string{"gps"},
		Deposit:     model.MustMoney("500"),
		MaxCapacity: 6,
		HomePort:    "Antibes",
		OwnerID:     owner.ID,
	}
	for _, fn := range opts {
		fn(b)
	}

	if err := f.repos.Boats.Create(ctx(t), b); err != nil {
		t.Fatalf("fixtures: failed to create boat: %v", err)
	}
	return b
}

// At places a boat at the given coordinates
func At(lat, lng float64) func(*model.Boat) {
	return func(b *model.Boat) {
		b.Latitude = &lat
		b.Longitude = &lng
	}
}

// ============================================================================
// Trip Fixtures
// ============================================================================

// CreateTrip creates a daily per-person trip on boat
func (f *Factory) CreateTrip(t *testing.T, organizer *model.User, boat *model.Boat, opts ...func(*model.Trip)) *model.Trip {
	t.Helper()

	trip := &model.Trip{
		ID:             uuid.New().String(),
		Title:          fmt.Sprintf("Trip %d", f.next()),
		TripType:       model.TripTypeDaily,
		PricingType:    model.PricingPerPerson,
		StartDates:     []string{"2025-07-01"},
		EndDates:       []string{"2025-07-01"},
		StartTimes:     []string{"08:00"},
		EndTimes:       []string{"17:00"},
		PassengerCount: 4,
		Price:          model.MustMoney("120.50"),
		OrganizerID:    organizer.ID,
		BoatID:         boat.ID,
	}
	for _, fn := range opts {
		fn(trip)
	}

	if err := f.repos.Trips.Create(ctx(t), trip); err != nil {
		t.Fatalf("fixtures: failed to create trip: %v", err)
	}
	return trip
}

// ============================================================================
// Booking Fixtures
// ============================================================================

// CreateBooking books seats on trip for renter, priced from the trip
func (f *Factory) CreateBooking(t *testing.T, renter *model.User, trip *model.Trip, seats int) *model.Booking {
	t.Helper()

	b := &model.Booking{
		ID:           uuid.New().String(),
		TripID:       trip.ID,
		UserID:       renter.ID,
		SelectedDate: trip.StartDates[0],
		Seats:        seats,
		TotalPrice:   service.PricingEngine{}.ComputeTotal(trip.Price, seats),
	}

	if err := f.repos.Bookings.Create(ctx(t), b); err != nil {
		t.Fatalf("fixtures: failed to create booking: %v", err)
	}
	return b
}

// ============================================================================
// Logbook Fixtures
// ============================================================================

// CreateLogbookEntry records a catch for owner
func (f *Factory) CreateLogbookEntry(t *testing.T, owner *model.User, opts ...func(*model.LogbookEntry)) *model.LogbookEntry {
	t.Helper()

	e := &model.LogbookEntry{
		ID:          uuid.New().String(),
		UserID:      owner.ID,
		FishSpecies: "Sea bass",
		FishingDate: "2025-06-15",
	}
	for _, fn := range opts {
		fn(e)
	}

	if err := f.repos.Logbook.Create(ctx(t), e); err != nil {
		t.Fatalf("fixtures: failed to create logbook entry: %v", err)
	}
	return e
}
