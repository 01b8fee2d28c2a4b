package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/model"
)

// BoatService handles boat registration, search and owner mutations
type BoatService struct {
	boatRepo BoatRepository
	tripRepo TripRepository
	gate     *EligibilityGate
	geo      *GeoRangeFilter
}

// BoatServiceConfig holds configuration for the boat service
type BoatServiceConfig struct {
	BoatRepo BoatRepository
	TripRepo TripRepository
	Gate     *EligibilityGate
	Geo      *GeoRangeFilter
}

// NewBoatService creates a new boat service
func NewBoatService(cfg BoatServiceConfig) *BoatService {
	geo := cfg.Geo
	if geo == nil {
		geo = NewGeoRangeFilter()
	}
	return &BoatService{
		boatRepo: cfg.BoatRepo,
		tripRepo: cfg.TripRepo,
		gate:     cfg.Gate,
		geo:      geo,
	}
}

// Create registers a boat owned by the actor, who must hold a boat license
func (s *BoatService) Create(ctx context.Context, actorID string, req model.CreateBoatRequest) (*model.Boat, error) {
	if err := s.gate.CheckBoatCreation(ctx, actorID); err != nil {
		return nil, err
	}

	boat := &model.Boat{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		YearBuilt:   req.YearBuilt,
		PhotoURL:    req.PhotoURL,
		LicenseType: req.LicenseType,
		BoatType:    req.BoatType,
		Equipment:   req.Equipment,
		MaxCapacity: req.MaxCapacity,
		BedCount:    req.BedCount,
		HomePort:    req.HomePort,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		EngineType:  req.EngineType,
		EnginePower: req.EnginePower,
		OwnerID:     actorID,
	}
	if req.Deposit != nil {
		boat.Deposit = *req.Deposit
	}
	if boat.Equipment == nil {
		boat.Equipment = []string{}
	}

	if err := s.boatRepo.Create(ctx, boat); err != nil {
		return nil, err
	}
	return boat, nil
}

// Get returns a boat by id
func (s *BoatService) Get(ctx context.Context, id string) (*model.Boat, error) {
	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if boat == nil {
		return nil, ErrBoatNotFound
	}
	return boat, nil
}

// List returns boats matching filter. The bounding box is applied here, after
// the storage query.
func (s *BoatService) List(ctx context.Context, filter model.BoatFilter) ([]*model.Boat, error) {
	if filter.Box != nil && filter.Box.IsEmpty() {
		return []*model.Boat{}, nil
	}
	boats, err := s.boatRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.geo.FilterBoats(boats, filter.Box), nil
}

// Update applies a partial update; only the owner may do so
func (s *BoatService) Update(ctx context.Context, actorID, id string, req model.UpdateBoatRequest) (*model.Boat, error) {
	boat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actorID, boat.OwnerID, "you can only update your own boats"); err != nil {
		return nil, err
	}

	req.ApplyTo(boat)
	if err := s.boatRepo.Update(ctx, boat); err != nil {
		return nil, err
	}
	return boat, nil
}

// Delete removes a boat; only the owner may do so and no trip may reference it
func (s *BoatService) Delete(ctx context.Context, actorID, id string) error {
	boat, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actorID, boat.OwnerID, "you can only delete your own boats"); err != nil {
		return err
	}

	trips, err := s.tripRepo.CountByBoat(ctx, boat.ID)
	if err != nil {
		return err
	}
	if trips > 0 {
		return ErrBoatHasTrips
	}
	return s.boatRepo.Delete(ctx, boat.ID)
}
