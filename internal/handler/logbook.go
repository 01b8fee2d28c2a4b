package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// LogbookHandler handles the caller's catch log
type LogbookHandler struct {
	logbookService *service.LogbookService
}

// NewLogbookHandler creates a new logbook handler
func NewLogbookHandler(logbookService *service.LogbookService) *LogbookHandler {
	return &LogbookHandler{logbookService: logbookService}
}

// Create handles POST /v1/logbook
func (h *LogbookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLogbookEntryRequest
	if !decodeValid(w, r, &req) {
		return
	}

	entry, err := h.logbookService.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, entry)
}

// List handles GET /v1/logbook
func (h *LogbookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	filter := model.LogbookFilter{
		FishSpecies: q.String("fishSpecies"),
		StartDate:   q.Date("startDate"),
		EndDate:     q.Date("endDate"),
	}
	if err := q.Err(); err != nil {
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	entries, err := h.logbookService.List(r.Context(), middleware.GetUserID(r.Context()), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

// Get handles GET /v1/logbook/{entryId}
func (h *LogbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.logbookService.Get(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entry)
}

// Update handles PUT /v1/logbook/{entryId}
func (h *LogbookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateLogbookEntryRequest
	if !decodeValid(w, r, &req) {
		return
	}

	entry, err := h.logbookService.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "entryId"), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /v1/logbook/{entryId}
func (h *LogbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.logbookService.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteNoContent(w)
}
