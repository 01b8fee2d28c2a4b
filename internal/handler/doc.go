// Package handler provides HTTP request handlers for the Fisher Fans API.
//
// Each handler struct wraps one service and translates between JSON
// payloads and service calls. Request bodies are decoded strictly (unknown
// fields are a 400) and validated before the service is invoked (422).
// Service errors go through MapServiceError, which produces RFC 9457
// Problem Details; infrastructure failures are logged and reported with a
// generic 500.
//
// # Routing
//
// Endpoints are declared once as data in Handlers.Routes and compiled by
// NewRouter into a chi router:
//
//	h := handler.Handlers{Boats: handler.NewBoatHandler(boatService), ...}
//	router := handler.NewRouter("/api", h.Routes(), sessionResolver)
//
// Public routes run behind OptionalAuth, all others behind RequireAuth.
package handler
