package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/api/internal/model"
)

// ============================================================================
// Boats
// ============================================================================

func TestBoatUpdate_Owner_Applies(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, owner, nil, nil)

	updated, err := env.boats.Update(context.Background(), owner.ID, boat.ID, model.UpdateBoatRequest{
		Name: strPtr("Mistral"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mistral", updated.Name)
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestBoatUpdate_NonOwner_ForbiddenAndUnchanged(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	other := env.register(t, "other@example.com", nil)
	boat := env.boat(t, owner, nil, nil)

	_, err := env.boats.Update(context.Background(), other.ID, boat.ID, model.UpdateBoatRequest{
		Name: strPtr("Stolen"),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := env.boats.Get(context.Background(), boat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sea Breeze", stored.Name)
}

func TestBoatDelete_Missing_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	other := env.register(t, "other@example.com", nil)

	err := env.boats.Delete(context.Background(), other.ID, "missing")
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestBoatDelete_NonOwner_Forbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	other := env.register(t, "other@example.com", nil)
	boat := env.boat(t, owner, nil, nil)

	err := env.boats.Delete(context.Background(), other.ID, boat.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBoatDelete_WithTrips_Conflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, owner, nil, nil)
	env.trip(t, owner, boat, "80")

	err := env.boats.Delete(context.Background(), owner.ID, boat.ID)
	assert.ErrorIs(t, err, ErrBoatHasTrips)
}

func TestBoatDelete_Owner_Removes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, owner, nil, nil)

	require.NoError(t, env.boats.Delete(context.Background(), owner.ID, boat.ID))

	_, err := env.boats.Get(context.Background(), boat.ID)
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

// ============================================================================
// Trips
// ============================================================================

func TestTripCreate_OrganizerIsCaller(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, owner, nil, nil)

	trip := env.trip(t, owner, boat, "120.50")

	assert.Equal(t, owner.ID, trip.OrganizerID)
	assert.Equal(t, boat.ID, trip.BoatID)
	assert.Equal(t, "120.50", trip.Price.String())
}

func TestTripUpdate_NonOrganizer_Forbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	owner := env.skipper(t, "skipper@example.com")
	other := env.register(t, "other@example.com", nil)
	trip := env.trip(t, owner, env.boat(t, owner, nil, nil), "80")

	_, err := env.trips.Update(context.Background(), other.ID, trip.ID, model.UpdateTripRequest{
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTripUpdate_Missing_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	other := env.register(t, "other@example.com", nil)

	_, err := env.trips.Update(context.Background(), other.ID, "missing", model.UpdateTripRequest{})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestTripDelete_WithBookings_Conflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, owner, env.boat(t, owner, nil, nil), "80")

	_, err := env.bookings.Create(ctx, renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 1,
	})
	require.NoError(t, err)

	err = env.trips.Delete(ctx, owner.ID, trip.ID)
	assert.ErrorIs(t, err, ErrTripHasBookings)
}

func TestTripList_StartDateFilter(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, owner, nil, nil)
	july := env.trip(t, owner, boat, "80")

	price := model.MustMoney("60")
	_, err := env.trips.Create(ctx, owner.ID, model.CreateTripRequest{
		Title: "Spring", TripType: model.TripTypeDaily, PricingType: model.PricingTotal,
		StartDates: []string{"2025-04-01"}, EndDates: []string{"2025-04-01"},
		PassengerCount: 2, Price: &price, BoatID: boat.ID,
	})
	require.NoError(t, err)

	trips, err := env.trips.List(ctx, model.TripFilter{StartDate: "2025-06-15"})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, july.ID, trips[0].ID)

	all, err := env.trips.List(ctx, model.TripFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// ============================================================================
// Bookings
// ============================================================================

func TestBookingGet_NonRenter_Forbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, owner, env.boat(t, owner, nil, nil), "80")

	booking, err := env.bookings.Create(ctx, renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 1,
	})
	require.NoError(t, err)

	_, err = env.bookings.Get(ctx, owner.ID, booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.bookings.Update(ctx, owner.ID, booking.ID, model.UpdateBookingRequest{Seats: intPtr(5)})
	assert.ErrorIs(t, err, ErrForbidden)

	err = env.bookings.Delete(ctx, owner.ID, booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := env.bookings.Get(ctx, renter.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Seats)
}

func TestBookingGet_Missing_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.bookings.Get(context.Background(), "anyone", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingList_OnlyCallersBookings(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.skipper(t, "skipper@example.com")
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)
	trip := env.trip(t, owner, env.boat(t, owner, nil, nil), "80")

	for _, u := range []*model.User{alice, bob} {
		_, err := env.bookings.Create(ctx, u.ID, model.CreateBookingRequest{
			TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 1,
		})
		require.NoError(t, err)
	}

	bookings, err := env.bookings.List(ctx, alice.ID, model.BookingFilter{UserID: bob.ID})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, alice.ID, bookings[0].UserID)
}

// ============================================================================
// Logbook
// ============================================================================

func TestLogbook_OwnerOnly(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)
	released := true

	entry, err := env.logbook.Create(ctx, alice.ID, model.CreateLogbookEntryRequest{
		FishSpecies: "Sea bass", FishingDate: "2025-07-01", Released: &released,
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, entry.UserID)
	assert.True(t, entry.Released)

	_, err = env.logbook.Get(ctx, bob.ID, entry.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.logbook.Update(ctx, bob.ID, entry.ID, model.UpdateLogbookEntryRequest{Comment: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, env.logbook.Delete(ctx, bob.ID, entry.ID), ErrForbidden)

	_, err = env.logbook.Get(ctx, bob.ID, "missing")
	assert.ErrorIs(t, err, ErrLogbookEntryNotFound)

	updated, err := env.logbook.Update(ctx, alice.ID, entry.ID, model.UpdateLogbookEntryRequest{Weight: floatPtr(2.4)})
	require.NoError(t, err)
	require.NotNil(t, updated.Weight)
	assert.InDelta(t, 2.4, *updated.Weight, 1e-9)
}

func TestLogbookList_FiltersByDateAndSpecies(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", nil)
	released := false

	for _, e := range []struct{ species, date string }{
		{"Sea bass", "2025-05-01"},
		{"Sea bream", "2025-06-01"},
		{"Mackerel", "2025-07-01"},
	} {
		_, err := env.logbook.Create(ctx, alice.ID, model.CreateLogbookEntryRequest{
			FishSpecies: e.species, FishingDate: e.date, Released: &released,
		})
		require.NoError(t, err)
	}

	sea, err := env.logbook.List(ctx, alice.ID, model.LogbookFilter{FishSpecies: "SEA"})
	require.NoError(t, err)
	assert.Len(t, sea, 2)

	june, err := env.logbook.List(ctx, alice.ID, model.LogbookFilter{StartDate: "2025-06-01", EndDate: "2025-06-30"})
	require.NoError(t, err)
	require.Len(t, june, 1)
	assert.Equal(t, "Sea bream", june[0].FishSpecies)
}
