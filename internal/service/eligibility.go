package service

import (
	"context"
	"fmt"

	"github.com/fisherfans/api/internal/model"
)

// EligibilityGate runs the creation-time business checks. They are never
// re-evaluated for existing resources.
type EligibilityGate struct {
	userRepo UserRepository
	boatRepo BoatRepository
}

// NewEligibilityGate creates an eligibility gate
func NewEligibilityGate(userRepo UserRepository, boatRepo BoatRepository) *EligibilityGate {
	return &EligibilityGate{userRepo: userRepo, boatRepo: boatRepo}
}

// CheckBoatCreation requires the actor to hold a boat license
func (g *EligibilityGate) CheckBoatCreation(ctx context.Context, actorID string) error {
	user, err := g.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownSubject
	}
	if !user.HasBoatLicense() {
		return ErrPermitRequired
	}
	return nil
}

// CheckTripCreation requires the actor to own at least one boat and to own
// boatID specifically. It returns the referenced boat.
func (g *EligibilityGate) CheckTripCreation(ctx context.Context, actorID, boatID string) (*model.Boat, error) {
	count, err := g.boatRepo.CountByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserHasNoBoat
	}

	boat, err := g.boatRepo.GetByID(ctx, boatID)
	if err != nil {
		return nil, err
	}
	if boat == nil {
		return nil, fmt.Errorf("%w: %s", ErrBoatNotFound, boatID)
	}
	if err := authorize(actorID, boat.OwnerID, "you can only create trips with your own boats"); err != nil {
		return nil, err
	}
	return boat, nil
}
