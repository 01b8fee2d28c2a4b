package handler

import (
	"net/http"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// AuthHandler handles login and identity endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/v1/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.LoginResponse{
		AccessToken:  result.Session.Token,
		RefreshToken: result.Session.Token,
		ExpiresIn:    result.Session.ExpiresIn,
		User: model.SessionUser{
			ID:        result.User.ID,
			Email:     result.User.Email,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
		},
	})
}

// Me handles GET /auth/v1/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	WriteJSON(w, http.StatusOK, user)
}
