package service

import (
	"errors"

	"github.com/fisherfans/api/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Session Errors =====
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnknownSubject     = errors.New("session subject no longer exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ===== Authorization Errors =====
var (
	ErrForbidden = errors.New("forbidden")
)

// ===== Business Rule Errors =====

// BusinessRuleError is a creation precondition failure carrying a stable
// machine-readable code.
type BusinessRuleError struct {
	Code    string
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

var (
	ErrPermitRequired = &BusinessRuleError{
		Code:    model.BusinessCodePermitRequired,
		Message: "Boat license is required to create a boat",
	}
	ErrUserHasNoBoat = &BusinessRuleError{
		Code:    model.BusinessCodeUserHasNoBoat,
		Message: "User must own a boat to create trips",
	}
)

// ===== Not Found Errors =====
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrBoatNotFound         = errors.New("boat not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrLogbookEntryNotFound = errors.New("logbook entry not found")
)

// ===== Conflict Errors =====
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrBoatHasTrips       = errors.New("boat still has trips")
	ErrTripHasBookings    = errors.New("trip still has bookings")
)
