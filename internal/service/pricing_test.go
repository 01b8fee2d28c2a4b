package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/api/internal/model"
)

func TestPricingEngine_ComputeTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price string
		seats int
		want  string
	}{
		{"120.50", 2, "241.00"},
		{"0.10", 3, "0.30"},
		{"99.99", 1, "99.99"},
		{"0", 5, "0.00"},
	}
	for _, tt := range tests {
		got := PricingEngine{}.ComputeTotal(model.MustMoney(tt.price), tt.seats)
		assert.Equal(t, tt.want, got.String(), "%s x %d", tt.price, tt.seats)
	}
}

func TestPricingEngine_Recompute_UsesGivenPrice(t *testing.T) {
	t.Parallel()
	booking := &model.Booking{Seats: 2, TotalPrice: model.MustMoney("241.00")}

	total := PricingEngine{}.Recompute(booking, 3, model.MustMoney("100.00"))

	assert.Equal(t, "300.00", total.String())
	assert.Equal(t, 3, booking.Seats)
	assert.True(t, booking.TotalPrice.Equal(model.MustMoney("300")))
}

// ============================================================================
// Booking Pricing Flow
// ============================================================================

func TestBookingCreate_PricesFromTrip(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	skipper := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, skipper, env.boat(t, skipper, nil, nil), "120.50")

	booking, err := env.bookings.Create(context.Background(), renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "241.00", booking.TotalPrice.String())
	assert.Equal(t, renter.ID, booking.UserID)
}

func TestBookingUpdate_SeatChange_RepricesWithCurrentTripPrice(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	skipper := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, skipper, env.boat(t, skipper, nil, nil), "120.50")

	booking, err := env.bookings.Create(ctx, renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 2,
	})
	require.NoError(t, err)

	newPrice := model.MustMoney("100.00")
	_, err = env.trips.Update(ctx, skipper.ID, trip.ID, model.UpdateTripRequest{Price: &newPrice})
	require.NoError(t, err)

	updated, err := env.bookings.Update(ctx, renter.ID, booking.ID, model.UpdateBookingRequest{Seats: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "300.00", updated.TotalPrice.String())

	stored, err := env.bookings.Get(ctx, renter.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Seats)
	assert.Equal(t, "300.00", stored.TotalPrice.String())
}

func TestBookingUpdate_DateOnly_KeepsTotal(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	skipper := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, skipper, env.boat(t, skipper, nil, nil), "120.50")

	booking, err := env.bookings.Create(ctx, renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: 2,
	})
	require.NoError(t, err)

	newPrice := model.MustMoney("10.00")
	_, err = env.trips.Update(ctx, skipper.ID, trip.ID, model.UpdateTripRequest{Price: &newPrice})
	require.NoError(t, err)

	updated, err := env.bookings.Update(ctx, renter.ID, booking.ID, model.UpdateBookingRequest{
		SelectedDate: strPtr("2025-07-02T00:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "241.00", updated.TotalPrice.String())
	assert.Equal(t, "2025-07-02", updated.SelectedDate)
}

func TestBookingCreate_SeatsAboveCapacity_Accepted(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	skipper := env.skipper(t, "skipper@example.com")
	renter := env.register(t, "renter@example.com", nil)
	trip := env.trip(t, skipper, env.boat(t, skipper, nil, nil), "50")

	booking, err := env.bookings.Create(context.Background(), renter.ID, model.CreateBookingRequest{
		TripID: trip.ID, SelectedDate: "2025-07-01", Seats: trip.PassengerCount + 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "700.00", booking.TotalPrice.String())
}

func TestBookingCreate_UnknownTrip_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	renter := env.register(t, "renter@example.com", nil)

	_, err := env.bookings.Create(context.Background(), renter.ID, model.CreateBookingRequest{
		TripID: "missing", SelectedDate: "2025-07-01", Seats: 1,
	})
	assert.ErrorIs(t, err, ErrTripNotFound)
}
