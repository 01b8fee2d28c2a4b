package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/testing/memstore"
	"github.com/fisherfans/api/pkg/jwt"
)

// ============================================================================
// Test Environment
// ============================================================================

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *memstore.Store
	tokens   *jwt.Service
	hasher   *BcryptHasher
	gate     *EligibilityGate
	issuer   *SessionIssuer
	resolver *SessionResolver
	erasure  *ErasureService
	auth     *AuthService
	users    *UserService
	boats    *BoatService
	trips    *TripService
	bookings *BookingService
	logbook  *LogbookService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := func() time.Time { return testNow }
	store := memstore.New().WithClock(clock)
	tokens := jwt.NewTestService("test-secret", time.Hour, clock)
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	gate := NewEligibilityGate(store.Users(), store.Boats())
	issuer := NewSessionIssuer(tokens)
	erasure := NewErasureService(store.Users(), clock)

	return &testEnv{
		store:    store,
		tokens:   tokens,
		hasher:   hasher,
		gate:     gate,
		issuer:   issuer,
		resolver: NewSessionResolver(tokens, store.Users()),
		erasure:  erasure,
		auth: NewAuthService(AuthServiceConfig{
			UserRepo: store.Users(),
			Hasher:   hasher,
			Issuer:   issuer,
		}),
		users: NewUserService(UserServiceConfig{
			UserRepo:    store.Users(),
			BoatRepo:    store.Boats(),
			TripRepo:    store.Trips(),
			BookingRepo: store.Bookings(),
			LogbookRepo: store.Logbook(),
			Hasher:      hasher,
			Erasure:     erasure,
		}),
		boats: NewBoatService(BoatServiceConfig{
			BoatRepo: store.Boats(),
			TripRepo: store.Trips(),
			Gate:     gate,
		}),
		trips: NewTripService(TripServiceConfig{
			TripRepo:    store.Trips(),
			BookingRepo: store.Bookings(),
			Gate:        gate,
		}),
		bookings: NewBookingService(BookingServiceConfig{
			BookingRepo: store.Bookings(),
			TripRepo:    store.Trips(),
		}),
		logbook: NewLogbookService(store.Logbook()),
	}
}

// ============================================================================
// Seed Helpers
// ============================================================================

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func (e *testEnv) register(t *testing.T, email string, license *string) *model.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), model.CreateUserRequest{
		LastName:          "Martin",
		FirstName:         "Alice",
		Email:             email,
		Password:          "correct-horse",
		City:              "Antibes",
		Status:            string(model.UserStatusIndividual),
		BoatLicenseNumber: license,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) skipper(t *testing.T, email string) *model.User {
	t.Helper()
	return e.register(t, email, strPtr("12345678"))
}

func (e *testEnv) boat(t *testing.T, owner *model.User, lat, lng *float64) *model.Boat {
	t.Helper()
	boat, err := e.boats.Create(context.Background(), owner.ID, model.CreateBoatRequest{
		Name:        "Sea Breeze",
		BoatType:    model.BoatTypeCabin,
		MaxCapacity: 6,
		HomePort:    "Port Vauban",
		Latitude:    lat,
		Longitude:   lng,
	})
	require.NoError(t, err)
	return boat
}

func (e *testEnv) trip(t *testing.T, organizer *model.User, boat *model.Boat, price string) *model.Trip {
	t.Helper()
	p := model.MustMoney(price)
	trip, err := e.trips.Create(context.Background(), organizer.ID, model.CreateTripRequest{
		Title:          "Dawn sea bass",
		TripType:       model.TripTypeDaily,
		PricingType:    model.PricingPerPerson,
		StartDates:     []string{"2025-07-01"},
		EndDates:       []string{"2025-07-01"},
		PassengerCount: 4,
		Price:          &p,
		BoatID:         boat.ID,
	})
	require.NoError(t, err)
	return trip
}
