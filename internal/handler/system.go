package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
)

const healthTimeout = 2 * time.Second

// SystemHandler serves the banner and health probe
type SystemHandler struct {
	name    string
	version string
	store   database.Pinger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(name, version string, store database.Pinger) *SystemHandler {
	return &SystemHandler{name: name, version: version, store: store}
}

// Banner handles GET /
func (h *SystemHandler) Banner(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"name":    h.name,
		"version": h.version,
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.Warn("health check failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		WriteError(w, model.NewServiceUnavailableError("storage unreachable"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
