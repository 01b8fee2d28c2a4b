package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/model"
)

// BookingService handles seat reservations and their derived price
type BookingService struct {
	bookingRepo BookingRepository
	tripRepo    TripRepository
	pricing     PricingEngine
}

// BookingServiceConfig holds configuration for the booking service
type BookingServiceConfig struct {
	BookingRepo BookingRepository
	TripRepo    TripRepository
}

// NewBookingService creates a new booking service
func NewBookingService(cfg BookingServiceConfig) *BookingService {
	return &BookingService{
		bookingRepo: cfg.BookingRepo,
		tripRepo:    cfg.TripRepo,
	}
}

// Create reserves seats for the actor, priced from the trip at this moment.
// Seats are not checked against the trip's passenger count.
func (s *BookingService) Create(ctx context.Context, actorID string, req model.CreateBookingRequest) (*model.Booking, error) {
	trip, err := s.loadTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}

	selectedDate, _ := model.NormalizeDate(req.SelectedDate)
	booking := &model.Booking{
		ID:           uuid.NewString(),
		TripID:       trip.ID,
		UserID:       actorID,
		SelectedDate: selectedDate,
		Seats:        req.Seats,
		TotalPrice:   s.pricing.ComputeTotal(trip.Price, req.Seats),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Get returns a booking visible only to its renter
func (s *BookingService) Get(ctx context.Context, actorID, id string) (*model.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := authorize(actorID, booking.UserID, "you can only access your own bookings"); err != nil {
		return nil, err
	}
	return booking, nil
}

// List returns the actor's bookings, optionally narrowed to one trip
func (s *BookingService) List(ctx context.Context, actorID string, filter model.BookingFilter) ([]*model.Booking, error) {
	filter.UserID = actorID
	return s.bookingRepo.List(ctx, filter)
}

// Update changes the date or seat count. A seat change re-prices the booking
// with the trip's current price.
func (s *BookingService) Update(ctx context.Context, actorID, id string, req model.UpdateBookingRequest) (*model.Booking, error) {
	booking, err := s.Get(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if req.SelectedDate != nil {
		if d, ok := model.NormalizeDate(*req.SelectedDate); ok {
			booking.SelectedDate = d
		}
	}
	if req.Seats != nil {
		trip, err := s.loadTrip(ctx, booking.TripID)
		if err != nil {
			return nil, err
		}
		s.pricing.Recompute(booking, *req.Seats, trip.Price)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete cancels a booking; only its renter may do so
func (s *BookingService) Delete(ctx context.Context, actorID, id string) error {
	booking, err := s.Get(ctx, actorID, id)
	if err != nil {
		return err
	}
	return s.bookingRepo.Delete(ctx, booking.ID)
}

func (s *BookingService) loadTrip(ctx context.Context, tripID string) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, tripID)
	}
	return trip, nil
}
