package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// BoatHandler handles boat endpoints
type BoatHandler struct {
	boatService *service.BoatService
}

// NewBoatHandler creates a new boat handler
func NewBoatHandler(boatService *service.BoatService) *BoatHandler {
	return &BoatHandler{boatService: boatService}
}

// Create handles POST /v1/boats
func (h *BoatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBoatRequest
	if !decodeValid(w, r, &req) {
		return
	}

	boat, err := h.boatService.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, boat)
}

// List handles GET /v1/boats. The bounding box applies only when all four
// bounds are present.
func (h *BoatHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	filter := model.BoatFilter{
		BoatType:    q.String("boatType"),
		HomePort:    q.String("homePort"),
		MinCapacity: q.Int("minCapacity"),
		Box:         service.NewBoundingBox(q.Float("minLat"), q.Float("maxLat"), q.Float("minLng"), q.Float("maxLng")),
	}
	if err := q.Err(); err != nil {
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	boats, err := h.boatService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, boats)
}

// Get handles GET /v1/boats/{boatId}
func (h *BoatHandler) Get(w http.ResponseWriter, r *http.Request) {
	boat, err := h.boatService.Get(r.Context(), chi.URLParam(r, "boatId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, boat)
}

// Update handles PUT /v1/boats/{boatId}
func (h *BoatHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBoatRequest
	if !decodeValid(w, r, &req) {
		return
	}

	boat, err := h.boatService.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "boatId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, boat)
}

// Delete handles DELETE /v1/boats/{boatId}
func (h *BoatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.boatService.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "boatId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}
