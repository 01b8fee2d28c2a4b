package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// TripHandler handles trip endpoints
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// Create handles POST /v1/trips
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTripRequest
	if !decodeValid(w, r, &req) {
		return
	}

	trip, err := h.tripService.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, trip)
}

// List handles GET /v1/trips
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	filter := model.TripFilter{
		TripType:    q.String("tripType"),
		MinPrice:    q.Money("minPrice"),
		MaxPrice:    q.Money("maxPrice"),
		StartDate:   q.Date("startDate"),
		BoatID:      q.String("boatId"),
		OrganizerID: q.String("organizerId"),
	}
	if err := q.Err(); err != nil {
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	trips, err := h.tripService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, trips)
}

// Get handles GET /v1/trips/{tripId}
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripService.Get(r.Context(), chi.URLParam(r, "tripId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, trip)
}

// Update handles PUT /v1/trips/{tripId}
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTripRequest
	if !decodeValid(w, r, &req) {
		return
	}

	trip, err := h.tripService.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, trip)
}

// Delete handles DELETE /v1/trips/{tripId}
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tripService.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "tripId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}
