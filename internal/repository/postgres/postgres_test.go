package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/repository/postgres"
	"github.com/fisherfans/api/internal/testing/fixtures"
	"github.com/fisherfans/api/internal/testing/testdb"
)

type pgEnv struct {
	users    *postgres.UserRepo
	boats    *postgres.BoatRepo
	trips    *postgres.TripRepo
	bookings *postgres.BookingRepo
	logbook  *postgres.LogbookRepo
	f        *fixtures.Factory
}

// newPgEnv binds every repository to one transaction that is rolled back
// when the test finishes.
func newPgEnv(t *testing.T) *pgEnv {
	t.Helper()
	tx := testdb.NewTx(t)

	env := &pgEnv{
		users:    postgres.NewUserRepo(tx),
		boats:    postgres.NewBoatRepo(tx),
		trips:    postgres.NewTripRepo(tx),
		bookings: postgres.NewBookingRepo(tx),
		logbook:  postgres.NewLogbookRepo(tx),
	}
	env.f = fixtures.New(fixtures.Repos{
		Users:    env.users,
		Boats:    env.boats,
		Trips:    env.trips,
		Bookings: env.bookings,
		Logbook:  env.logbook,
	})
	return env
}

func TestUserRepo_CreateAndGetByEmail_CaseInsensitive(t *testing.T) {
	env := newPgEnv(t)
	ctx := context.Background()

	user := env.f.CreateUser(t, func(u *model.User) { u.Email = "marin@example.com" })
	assert.False(t, user.CreatedAt.IsZero(), "CreatedAt should be set by DB")

	got, err := env.users.GetByEmail(ctx, "MARIN@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, []string{"fr"}, got.Languages)
}

func TestUserRepo_GetByID_NotUUID_ReturnsNil(t *testing.T) {
	env := newPgEnv(t)

	got, err := env.users.GetByID(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	env := newPgEnv(t)
	env.f.CreateUser(t, func(u *model.User) { u.Email = "dup@example.com" })

	err := env.users.Create(context.Background(), &model.User{
		ID:        uuid.New().String(),
		LastName:  "Other",
		FirstName: "Anne",
		Email:     "DUP@example.com",
		City:      "Nice",
		Status:    model.UserStatusIndividual,
	})
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestUserRepo_Update_Missing_NotFound(t *testing.T) {
	env := newPgEnv(t)

	err := env.users.Update(context.Background(), &model.User{
		ID: uuid.New().String(), LastName: "X", FirstName: "Y", Email: "x@y.fr", City: "Z",
		Status: model.UserStatusIndividual,
	})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestBoatRepo_RoundTrip(t *testing.T) {
	env := newPgEnv(t)
	ctx := context.Background()

	owner := env.f.CreateSkipper(t)
	boat := env.f.CreateBoat(t, owner, fixtures.At(43.58, 7.12))

	got, err := env.boats.GetByID(ctx, boat.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "500.00", got.Deposit.String())
	assert.Equal(t, owner.ID, got.OwnerID)
	require.NotNil(t, got.Longitude)
	assert.InDelta(t, 7.12, *got.Longitude, 1e-9)

	got.Latitude, got.Longitude = nil, nil
	require.NoError(t, env.boats.Update(ctx, got))

	again, err := env.boats.GetByID(ctx, boat.ID)
	require.NoError(t, err)
	assert.Nil(t, again.Latitude)

	n, err := env.boats.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTripRepo_ListByPriceRange(t *testing.T) {
	env := newPgEnv(t)
	owner := env.f.CreateSkipper(t)
	boat := env.f.CreateBoat(t, owner)

	env.f.CreateTrip(t, owner, boat, func(tr *model.Trip) { tr.Price = model.MustMoney("9.50") })
	mid := env.f.CreateTrip(t, owner, boat, func(tr *model.Trip) { tr.Price = model.MustMoney("50") })
	env.f.CreateTrip(t, owner, boat, func(tr *model.Trip) { tr.Price = model.MustMoney("300") })

	lo, hi := model.MustMoney("10"), model.MustMoney("100")
	trips, err := env.trips.List(context.Background(), model.TripFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, mid.ID, trips[0].ID)
}

func TestBookingRepo_CountAndDelete(t *testing.T) {
	env := newPgEnv(t)
	ctx := context.Background()

	owner := env.f.CreateSkipper(t)
	trip := env.f.CreateTrip(t, owner, env.f.CreateBoat(t, owner))
	booking := env.f.CreateBooking(t, env.f.CreateUser(t), trip, 2)

	n, err := env.bookings.CountByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := env.bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "241.00", got.TotalPrice.String())

	require.NoError(t, env.bookings.Delete(ctx, booking.ID))
	n, err = env.bookings.CountByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLogbookRepo_List_SpeciesAndDates(t *testing.T) {
	env := newPgEnv(t)
	owner := env.f.CreateUser(t)

	env.f.CreateLogbookEntry(t, owner, func(e *model.LogbookEntry) { e.FishSpecies = "Sea bass"; e.FishingDate = "2025-06-01" })
	env.f.CreateLogbookEntry(t, owner, func(e *model.LogbookEntry) { e.FishSpecies = "Sea bream"; e.FishingDate = "2025-07-01" })
	env.f.CreateLogbookEntry(t, owner, func(e *model.LogbookEntry) { e.FishSpecies = "Tuna"; e.FishingDate = "2025-06-10" })

	entries, err := env.logbook.List(context.Background(), model.LogbookFilter{UserID: owner.ID, FishSpecies: "SEA"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = env.logbook.List(context.Background(), model.LogbookFilter{UserID: owner.ID, EndDate: "2025-06-10"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
