package service

import (
	"context"

	"github.com/fisherfans/api/internal/model"
)

// Repository contracts shared by the services. Single-record getters return
// (nil, nil) when the record does not exist; unique violations surface as
// database.ErrDuplicate.

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// BoatRepository defines the interface for boat storage
type BoatRepository interface {
	Create(ctx context.Context, boat *model.Boat) error
	GetByID(ctx context.Context, id string) (*model.Boat, error)
	// List applies every filter field except Box, which is evaluated by the service.
	List(ctx context.Context, filter model.BoatFilter) ([]*model.Boat, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, boat *model.Boat) error
	Delete(ctx context.Context, id string) error
}

// TripRepository defines the interface for trip storage
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	// List applies every filter field except StartDate, which is evaluated by the service.
	List(ctx context.Context, filter model.TripFilter) ([]*model.Trip, error)
	CountByBoat(ctx context.Context, boatID string) (int, error)
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error)
	CountByTrip(ctx context.Context, tripID string) (int, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string) error
}

// LogbookRepository defines the interface for logbook storage
type LogbookRepository interface {
	Create(ctx context.Context, entry *model.LogbookEntry) error
	GetByID(ctx context.Context, id string) (*model.LogbookEntry, error)
	List(ctx context.Context, filter model.LogbookFilter) ([]*model.LogbookEntry, error)
	Update(ctx context.Context, entry *model.LogbookEntry) error
	Delete(ctx context.Context, id string) error
}
