package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// UserHandler handles account endpoints and the per-user resource listings
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /v1/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// List handles GET /v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	filter := model.UserFilter{
		LastName: q.String("lastName"),
		City:     q.String("city"),
		Status:   q.String("status"),
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// Get handles GET /v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Update handles PUT /v1/users/{userId}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if !decodeValid(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "userId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /v1/users/{userId}. The account is anonymized, not removed.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "userId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// ListBoats handles GET /v1/users/{userId}/boats
func (h *UserHandler) ListBoats(w http.ResponseWriter, r *http.Request) {
	boats, err := h.userService.ListBoats(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, boats)
}

// ListTrips handles GET /v1/users/{userId}/trips
func (h *UserHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.userService.ListTrips(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, trips)
}

// ListBookings handles GET /v1/users/{userId}/bookings
func (h *UserHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.userService.ListBookings(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, bookings)
}

// ListLogbook handles GET /v1/users/{userId}/logbook
func (h *UserHandler) ListLogbook(w http.ResponseWriter, r *http.Request) {
	entries, err := h.userService.ListLogbook(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}
