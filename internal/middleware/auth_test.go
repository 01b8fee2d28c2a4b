package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
)

// ============================================================================
// Mock SessionResolver
// ============================================================================

type mockResolver struct {
	resolveFunc func(token string) (*model.User, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	return m.resolveFunc(token)
}

func resolvesTo(user *model.User) *mockResolver {
	return &mockResolver{resolveFunc: func(string) (*model.User, error) { return user, nil }}
}

func failsWith(err error) *mockResolver {
	return &mockResolver{resolveFunc: func(string) (*model.User, error) { return nil, err }}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()
	var p model.ProblemDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	return p
}

var skipper = &model.User{ID: "u-1", Email: "skipper@example.com"}

// ============================================================================
// RequireAuth
// ============================================================================

func TestRequireAuth_MissingHeader_Unauthorized(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	RequireAuth(resolvesTo(skipper))(next).ServeHTTP(rr, newTestRequest(""))

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, model.ErrCodeUnauthorized, decodeProblem(t, rr).Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestRequireAuth_MalformedHeader_Unauthorized(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"Basic abc", "Bearer", "Bearer   ", "token"} {
		t.Run(header, func(t *testing.T) {
			next := &captureHandler{}
			rr := httptest.NewRecorder()

			RequireAuth(resolvesTo(skipper))(next).ServeHTTP(rr, newTestRequest(header))

			assert.False(t, next.called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRequireAuth_ValidToken_AttachesUser(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	RequireAuth(resolvesTo(skipper))(next).ServeHTTP(rr, newTestRequest("bearer good-token"))

	require.True(t, next.called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, skipper, CurrentUser(next.ctx))
	assert.Equal(t, "u-1", GetUserID(next.ctx))
}

func TestRequireAuth_SessionErrors_MapToCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code model.ErrorCode
	}{
		{"expired", service.ErrSessionExpired, model.ErrCodeTokenExpired},
		{"unknown subject", service.ErrUnknownSubject, model.ErrCodeUnknownSubject},
		{"invalid", fmt.Errorf("%w: bad signature", service.ErrUnauthenticated), model.ErrCodeTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &captureHandler{}
			rr := httptest.NewRecorder()

			RequireAuth(failsWith(tt.err))(next).ServeHTTP(rr, newTestRequest("Bearer x"))

			assert.False(t, next.called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.code, decodeProblem(t, rr).Code)
		})
	}
}

func TestRequireAuth_StorageFailure_InternalError(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	RequireAuth(failsWith(errors.New("connection refused")))(next).ServeHTTP(rr, newTestRequest("Bearer x"))

	assert.False(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

// ============================================================================
// OptionalAuth
// ============================================================================

func TestOptionalAuth_NoToken_Anonymous(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	OptionalAuth(resolvesTo(skipper))(next).ServeHTTP(rr, newTestRequest(""))

	require.True(t, next.called)
	assert.Nil(t, CurrentUser(next.ctx))
}

func TestOptionalAuth_InvalidToken_ProceedsAnonymously(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	OptionalAuth(failsWith(service.ErrSessionExpired))(next).ServeHTTP(rr, newTestRequest("Bearer stale"))

	require.True(t, next.called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, GetUserID(next.ctx))
}

// Not parallel: swaps the default logger.
func TestOptionalAuth_ResolveFailures_Logging(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	tests := []struct {
		name   string
		err    error
		logged bool
	}{
		{"expired session", service.ErrSessionExpired, false},
		{"unknown subject", service.ErrUnknownSubject, false},
		{"invalid token", service.ErrUnauthenticated, false},
		{"storage down", errors.New("connection refused"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			next := &captureHandler{}
			rr := httptest.NewRecorder()

			OptionalAuth(failsWith(tt.err))(next).ServeHTTP(rr, newTestRequest("Bearer x"))

			require.True(t, next.called)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Empty(t, GetUserID(next.ctx))
			if tt.logged {
				assert.Contains(t, buf.String(), "session resolution failed")
				assert.Contains(t, buf.String(), "connection refused")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOptionalAuth_ValidToken_AttachesUser(t *testing.T) {
	t.Parallel()
	next := &captureHandler{}
	rr := httptest.NewRecorder()

	OptionalAuth(resolvesTo(skipper))(next).ServeHTTP(rr, newTestRequest("Bearer good"))

	require.True(t, next.called)
	assert.Equal(t, "u-1", GetUserID(next.ctx))
}
