package service

import (
	"github.com/shopspring/decimal"

	"github.com/fisherfans/api/internal/model"
)

// PricingEngine derives a booking's charge from its trip price
type PricingEngine struct{}

// ComputeTotal returns tripPrice × seats in exact decimal arithmetic
func (PricingEngine) ComputeTotal(tripPrice model.Money, seats int) model.Money {
	return model.NewMoney(tripPrice.Mul(decimal.NewFromInt(int64(seats))))
}

// Recompute applies a seat change to booking, pricing it with the trip's
// current price rather than the price captured at creation.
func (p PricingEngine) Recompute(booking *model.Booking, newSeats int, currentTripPrice model.Money) model.Money {
	total := p.ComputeTotal(currentTripPrice, newSeats)
	booking.Seats = newSeats
	booking.TotalPrice = total
	return total
}
