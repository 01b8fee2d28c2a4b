package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// UserService handles registration and self-service account operations
type UserService struct {
	userRepo    UserRepository
	boatRepo    BoatRepository
	tripRepo    TripRepository
	bookingRepo BookingRepository
	logbookRepo LogbookRepository
	hasher      PasswordHasher
	erasure     *ErasureService
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	UserRepo    UserRepository
	BoatRepo    BoatRepository
	TripRepo    TripRepository
	BookingRepo BookingRepository
	LogbookRepo LogbookRepository
	Hasher      PasswordHasher
	Erasure     *ErasureService
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		userRepo:    cfg.UserRepo,
		boatRepo:    cfg.BoatRepo,
		tripRepo:    cfg.TripRepo,
		bookingRepo: cfg.BookingRepo,
		logbookRepo: cfg.LogbookRepo,
		hasher:      cfg.Hasher,
		erasure:     cfg.Erasure,
	}
}

// Register creates an account with a hashed password
func (s *UserService) Register(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:                uuid.NewString(),
		LastName:          req.LastName,
		FirstName:         req.FirstName,
		Email:             email,
		PasswordHash:      &hash,
		City:              req.City,
		Phone:             req.Phone,
		PhotoURL:          req.PhotoURL,
		Status:            model.UserStatus(req.Status),
		BoatLicenseNumber: req.BoatLicenseNumber,
		InsuranceNumber:   req.InsuranceNumber,
		CompanyName:       req.CompanyName,
		ActivityType:      req.ActivityType,
		Address:           req.Address,
		PostalCode:        req.PostalCode,
		Languages:         req.Languages,
	}
	if req.BirthDate != nil {
		if d, ok := model.NormalizeDate(*req.BirthDate); ok {
			user.BirthDate = &d
		}
	}
	if user.Languages == nil {
		user.Languages = []string{}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Get returns a user by id
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns users matching filter
func (s *UserService) List(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	return s.userRepo.List(ctx, filter)
}

// Update applies a partial update to the actor's own account
func (s *UserService) Update(ctx context.Context, actorID, id string, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actorID, user.ID, "you can only update your own profile"); err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}
	req.ApplyTo(user)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Delete anonymizes the actor's own account. The row is retained.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actorID, user.ID, "you can only delete your own account"); err != nil {
		return err
	}
	return s.erasure.Anonymize(ctx, user)
}

// ListBoats returns the boats owned by a user
func (s *UserService) ListBoats(ctx context.Context, userID string) ([]*model.Boat, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.boatRepo.List(ctx, model.BoatFilter{OwnerID: userID})
}

// ListTrips returns the trips organized by a user
func (s *UserService) ListTrips(ctx context.Context, userID string) ([]*model.Trip, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.tripRepo.List(ctx, model.TripFilter{OrganizerID: userID})
}

// ListBookings returns a user's bookings. Only the user may see them.
func (s *UserService) ListBookings(ctx context.Context, actorID, userID string) ([]*model.Booking, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if err := authorize(actorID, userID, "you can only view your own bookings"); err != nil {
		return nil, err
	}
	return s.bookingRepo.List(ctx, model.BookingFilter{UserID: userID})
}

// ListLogbook returns a user's logbook. Only the user may see it.
func (s *UserService) ListLogbook(ctx context.Context, actorID, userID string) ([]*model.LogbookEntry, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if err := authorize(actorID, userID, "you can only view your own logbook"); err != nil {
		return nil, err
	}
	return s.logbookRepo.List(ctx, model.LogbookFilter{UserID: userID})
}
