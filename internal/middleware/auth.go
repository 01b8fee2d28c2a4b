package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// SessionResolver turns a bearer token into the user it was issued for
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// RequireAuth rejects requests without a valid session and attaches the
// resolved user to the context
func RequireAuth(resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("authentication required").WriteJSON(w)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				sessionProblem(r, err).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth attaches the user when a valid token is present. A missing or
// unusable token lets the request through anonymously.
func OptionalAuth(resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if !isSessionError(err) {
					logResolveFailure(r, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func sessionProblem(r *http.Request, err error) *model.ProblemDetails {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return model.NewSessionError(model.ErrCodeTokenExpired, "session expired")
	case errors.Is(err, service.ErrUnknownSubject):
		return model.NewSessionError(model.ErrCodeUnknownSubject, "session subject no longer exists")
	case errors.Is(err, service.ErrUnauthenticated):
		return model.NewSessionError(model.ErrCodeTokenInvalid, "invalid token")
	}

	logResolveFailure(r, err)
	return model.NewInternalError("")
}

func isSessionError(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) ||
		errors.Is(err, service.ErrUnknownSubject) ||
		errors.Is(err, service.ErrUnauthenticated)
}

func logResolveFailure(r *http.Request, err error) {
	slog.Error("session resolution failed",
		slog.String("error", err.Error()),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// CurrentUser returns the authenticated user, or nil for anonymous requests
func CurrentUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserKey).(*model.User); ok {
		return user
	}
	return nil
}

// GetUserID returns the authenticated user's id, or "" for anonymous requests
func GetUserID(ctx context.Context) string {
	if user := CurrentUser(ctx); user != nil {
		return user.ID
	}
	return ""
}
