package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/model"
)

// TripService handles trip publication, search and organizer mutations
type TripService struct {
	tripRepo    TripRepository
	bookingRepo BookingRepository
	gate        *EligibilityGate
}

// TripServiceConfig holds configuration for the trip service
type TripServiceConfig struct {
	TripRepo    TripRepository
	BookingRepo BookingRepository
	Gate        *EligibilityGate
}

// NewTripService creates a new trip service
func NewTripService(cfg TripServiceConfig) *TripService {
	return &TripService{
		tripRepo:    cfg.TripRepo,
		bookingRepo: cfg.BookingRepo,
		gate:        cfg.Gate,
	}
}

// Create publishes a trip on one of the actor's boats
func (s *TripService) Create(ctx context.Context, actorID string, req model.CreateTripRequest) (*model.Trip, error) {
	boat, err := s.gate.CheckTripCreation(ctx, actorID, req.BoatID)
	if err != nil {
		return nil, err
	}

	trip := &model.Trip{
		ID:             uuid.NewString(),
		Title:          req.Title,
		PracticalInfo:  req.PracticalInfo,
		TripType:       req.TripType,
		PricingType:    req.PricingType,
		StartDates:     req.NormalizedStartDates(),
		EndDates:       req.NormalizedEndDates(),
		StartTimes:     orEmpty(req.StartTimes),
		EndTimes:       orEmpty(req.EndTimes),
		PassengerCount: req.PassengerCount,
		Price:          *req.Price,
		OrganizerID:    actorID,
		BoatID:         boat.ID,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Get returns a trip by id
func (s *TripService) Get(ctx context.Context, id string) (*model.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// List returns trips matching filter
func (s *TripService) List(ctx context.Context, filter model.TripFilter) ([]*model.Trip, error) {
	trips, err := s.tripRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.StartDate == "" {
		return trips, nil
	}

	kept := make([]*model.Trip, 0, len(trips))
	for _, t := range trips {
		if t.StartsOnOrAfter(filter.StartDate) {
			kept = append(kept, t)
		}
	}
	return kept, nil
}

// Update applies a partial update; only the organizer may do so
func (s *TripService) Update(ctx context.Context, actorID, id string, req model.UpdateTripRequest) (*model.Trip, error) {
	trip, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actorID, trip.OrganizerID, "you can only update your own trips"); err != nil {
		return nil, err
	}

	req.ApplyTo(trip)
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip; only the organizer may do so and no booking may reference it
func (s *TripService) Delete(ctx context.Context, actorID, id string) error {
	trip, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actorID, trip.OrganizerID, "you can only delete your own trips"); err != nil {
		return err
	}

	bookings, err := s.bookingRepo.CountByTrip(ctx, trip.ID)
	if err != nil {
		return err
	}
	if bookings > 0 {
		return ErrTripHasBookings
	}
	return s.tripRepo.Delete(ctx, trip.ID)
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
