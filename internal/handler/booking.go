package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// BookingHandler handles booking endpoints. Every route is renter-scoped.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /v1/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if !decodeValid(w, r, &req) {
		return
	}

	booking, err := h.bookingService.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, booking)
}

// List handles GET /v1/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	filter := model.BookingFilter{TripID: q.String("tripId")}

	bookings, err := h.bookingService.List(r.Context(), middleware.GetUserID(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, bookings)
}

// Get handles GET /v1/bookings/{bookingId}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingService.Get(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "bookingId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

// Update handles PUT /v1/bookings/{bookingId}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBookingRequest
	if !decodeValid(w, r, &req) {
		return
	}

	booking, err := h.bookingService.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "bookingId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, booking)
}

// Delete handles DELETE /v1/bookings/{bookingId}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingService.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "bookingId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}
