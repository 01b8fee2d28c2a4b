package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Anything unrecognised is treated as infrastructure and gets a generic 500.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	// ===== Business Rule Errors → 403 =====
	var rule *service.BusinessRuleError
	if errors.As(err, &rule) {
		return model.NewBusinessRuleError(rule.Code, rule.Message)
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewSessionError(model.ErrCodeLoginFailed, err.Error())
	case errors.Is(err, service.ErrSessionExpired):
		return model.NewSessionError(model.ErrCodeTokenExpired, err.Error())
	case errors.Is(err, service.ErrUnknownSubject):
		return model.NewSessionError(model.ErrCodeUnknownSubject, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrForbidden):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrBoatNotFound):
		return model.NewNotFoundError("boat")
	case errors.Is(err, service.ErrTripNotFound):
		return model.NewNotFoundError("trip")
	case errors.Is(err, service.ErrBookingNotFound):
		return model.NewNotFoundError("booking")
	case errors.Is(err, service.ErrLogbookEntryNotFound):
		return model.NewNotFoundError("logbook entry")
	case errors.Is(err, database.ErrNotFound):
		return model.NewNotFoundError("resource")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, database.ErrDuplicate):
		return model.NewAlreadyExistsError(err.Error())
	case errors.Is(err, service.ErrBoatHasTrips),
		errors.Is(err, service.ErrTripHasBookings):
		return model.NewConflictError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// writeServiceError maps err and writes it. Infrastructure failures are
// logged with the request id; their cause never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	problem := MapServiceError(err)
	if problem.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	WriteError(w, problem)
}
