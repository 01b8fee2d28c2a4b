package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/internal/service"
	"github.com/fisherfans/api/internal/testing/fixtures"
	"github.com/fisherfans/api/internal/testing/memstore"
	"github.com/fisherfans/api/pkg/jwt"
)

// ============================================================================
// Test Environment
// ============================================================================

const (
	testSecret = "handler-test-secret"
	testPrefix = "/api"
)

type testEnv struct {
	store    *memstore.Store
	tokens   *jwt.Service
	issuer   *service.SessionIssuer
	fixtures *fixtures.Factory
	router   http.Handler
}

type failingPinger struct{}

func (failingPinger) Ping(ctx context.Context) error { return errors.New("connection refused") }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithPinger(t, nil)
}

func newTestEnvWithPinger(t *testing.T, pinger database.Pinger) *testEnv {
	t.Helper()

	store := memstore.New()
	if pinger == nil {
		pinger = store
	}
	tokens := jwt.NewTestService(testSecret, time.Hour, time.Now)
	hasher := service.NewBcryptHasherWithCost(bcrypt.MinCost)
	gate := service.NewEligibilityGate(store.Users(), store.Boats())
	issuer := service.NewSessionIssuer(tokens)

	h := Handlers{
		System: NewSystemHandler("fisherfans-api", "test", pinger),
		Auth: NewAuthHandler(service.NewAuthService(service.AuthServiceConfig{
			UserRepo: store.Users(),
			Hasher:   hasher,
			Issuer:   issuer,
		})),
		Users: NewUserHandler(service.NewUserService(service.UserServiceConfig{
			UserRepo:    store.Users(),
			BoatRepo:    store.Boats(),
			TripRepo:    store.Trips(),
			BookingRepo: store.Bookings(),
			LogbookRepo: store.Logbook(),
			Hasher:      hasher,
			Erasure:     service.NewErasureService(store.Users(), time.Now),
		})),
		Boats: NewBoatHandler(service.NewBoatService(service.BoatServiceConfig{
			BoatRepo: store.Boats(),
			TripRepo: store.Trips(),
			Gate:     gate,
		})),
		Trips: NewTripHandler(service.NewTripService(service.TripServiceConfig{
			TripRepo:    store.Trips(),
			BookingRepo: store.Bookings(),
			Gate:        gate,
		})),
		Bookings: NewBookingHandler(service.NewBookingService(service.BookingServiceConfig{
			BookingRepo: store.Bookings(),
			TripRepo:    store.Trips(),
		})),
		Logbook: NewLogbookHandler(service.NewLogbookService(store.Logbook())),
	}

	return &testEnv{
		store:  store,
		tokens: tokens,
		issuer: issuer,
		fixtures: fixtures.New(fixtures.Repos{
			Users:    store.Users(),
			Boats:    store.Boats(),
			Trips:    store.Trips(),
			Bookings: store.Bookings(),
			Logbook:  store.Logbook(),
		}),
		router: NewRouter(testPrefix, h.Routes(), service.NewSessionResolver(tokens, store.Users())),
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func (e *testEnv) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	session, err := e.issuer.Issue(user)
	require.NoError(t, err)
	return session.Token
}

// do sends a request through the full router. body may be nil, a string of
// raw JSON, or any value to marshal.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, testPrefix+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func parseProblem(t *testing.T, rr *httptest.ResponseRecorder) *model.ProblemDetails {
	t.Helper()
	require.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	p := decode[model.ProblemDetails](t, rr)
	return &p
}

func withEmail(email string) func(*model.User) {
	return func(u *model.User) { u.Email = email }
}
