package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/model"
)

// Route declares one endpoint. Public routes resolve a bearer token when one
// is supplied; every other route requires it.
type Route struct {
	Method  string
	Pattern string
	Public  bool
	Handler http.HandlerFunc
}

// Handlers groups every endpoint handler the router serves
type Handlers struct {
	System   *SystemHandler
	Auth     *AuthHandler
	Users    *UserHandler
	Boats    *BoatHandler
	Trips    *TripHandler
	Bookings *BookingHandler
	Logbook  *LogbookHandler
}

// Routes returns the route table
func (h Handlers) Routes() []Route {
	return []Route{
		{http.MethodGet, "/", true, h.System.Banner},
		{http.MethodGet, "/health", true, h.System.Health},

		// Auth
		{http.MethodPost, "/auth/v1/login", true, h.Auth.Login},
		{http.MethodGet, "/auth/v1/me", false, h.Auth.Me},

		// Users
		{http.MethodPost, "/v1/users", true, h.Users.Register},
		{http.MethodGet, "/v1/users", false, h.Users.List},
		{http.MethodGet, "/v1/users/{userId}", false, h.Users.Get},
		{http.MethodPut, "/v1/users/{userId}", false, h.Users.Update},
		{http.MethodDelete, "/v1/users/{userId}", false, h.Users.Delete},
		{http.MethodGet, "/v1/users/{userId}/boats", false, h.Users.ListBoats},
		{http.MethodGet, "/v1/users/{userId}/trips", false, h.Users.ListTrips},
		{http.MethodGet, "/v1/users/{userId}/bookings", false, h.Users.ListBookings},
		{http.MethodGet, "/v1/users/{userId}/logbook", false, h.Users.ListLogbook},

		// Boats
		{http.MethodPost, "/v1/boats", false, h.Boats.Create},
		{http.MethodGet, "/v1/boats", true, h.Boats.List},
		{http.MethodGet, "/v1/boats/{boatId}", true, h.Boats.Get},
		{http.MethodPut, "/v1/boats/{boatId}", false, h.Boats.Update},
		{http.MethodDelete, "/v1/boats/{boatId}", false, h.Boats.Delete},

		// Trips
		{http.MethodPost, "/v1/trips", false, h.Trips.Create},
		{http.MethodGet, "/v1/trips", true, h.Trips.List},
		{http.MethodGet, "/v1/trips/{tripId}", true, h.Trips.Get},
		{http.MethodPut, "/v1/trips/{tripId}", false, h.Trips.Update},
		{http.MethodDelete, "/v1/trips/{tripId}", false, h.Trips.Delete},

		// Bookings
		{http.MethodPost, "/v1/bookings", false, h.Bookings.Create},
		{http.MethodGet, "/v1/bookings", false, h.Bookings.List},
		{http.MethodGet, "/v1/bookings/{bookingId}", false, h.Bookings.Get},
		{http.MethodPut, "/v1/bookings/{bookingId}", false, h.Bookings.Update},
		{http.MethodDelete, "/v1/bookings/{bookingId}", false, h.Bookings.Delete},

		// Logbook
		{http.MethodPost, "/v1/logbook", false, h.Logbook.Create},
		{http.MethodGet, "/v1/logbook", false, h.Logbook.List},
		{http.MethodGet, "/v1/logbook/{entryId}", false, h.Logbook.Get},
		{http.MethodPut, "/v1/logbook/{entryId}", false, h.Logbook.Update},
		{http.MethodDelete, "/v1/logbook/{entryId}", false, h.Logbook.Delete},
	}
}

// NewRouter compiles routes under prefix ("" or "/" mounts at the root)
func NewRouter(prefix string, routes []Route, resolver middleware.SessionResolver) chi.Router {
	api := chi.NewRouter()
	api.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, model.NewNotFoundError("route"))
	})
	api.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, model.NewMethodNotAllowedError(r.Method))
	})

	public := api.With(middleware.OptionalAuth(resolver))
	private := api.With(middleware.RequireAuth(resolver))
	for _, rt := range routes {
		if rt.Public {
			public.Method(rt.Method, rt.Pattern, rt.Handler)
		} else {
			private.Method(rt.Method, rt.Pattern, rt.Handler)
		}
	}

	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return api
	}
	root := chi.NewRouter()
	root.NotFound(api.NotFoundHandler())
	root.Mount(prefix, api)
	return root
}
