package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fisherfans/api/internal/config"
	"github.com/fisherfans/api/internal/handler"
	"github.com/fisherfans/api/internal/middleware"
	"github.com/fisherfans/api/internal/service"
	"github.com/fisherfans/api/pkg/jwt"
)

const serviceName = "fisherfans-api"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel,
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		slog.Warn("using the default JWT secret; set JWT_SECRET outside development")
	}

	// Initialize storage
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStorage(connectCtx, cfg.Database)
	cancelConnect()
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.close()

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize services
	hasher := service.NewBcryptHasher()
	gate := service.NewEligibilityGate(store.users, store.boats)
	issuer := service.NewSessionIssuer(jwtService)
	resolver := service.NewSessionResolver(jwtService, store.users)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: store.users,
		Hasher:   hasher,
		Issuer:   issuer,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:    store.users,
		BoatRepo:    store.boats,
		TripRepo:    store.trips,
		BookingRepo: store.bookings,
		LogbookRepo: store.logbook,
		Hasher:      hasher,
		Erasure:     service.NewErasureService(store.users, time.Now),
	})
	boatService := service.NewBoatService(service.BoatServiceConfig{
		BoatRepo: store.boats,
		TripRepo: store.trips,
		Gate:     gate,
	})
	tripService := service.NewTripService(service.TripServiceConfig{
		TripRepo:    store.trips,
		BookingRepo: store.bookings,
		Gate:        gate,
	})
	bookingService := service.NewBookingService(service.BookingServiceConfig{
		BookingRepo: store.bookings,
		TripRepo:    store.trips,
	})
	logbookService := service.NewLogbookService(store.logbook)

	// Initialize handlers
	handlers := handler.Handlers{
		System:   handler.NewSystemHandler(serviceName, version, store.pinger),
		Auth:     handler.NewAuthHandler(authService),
		Users:    handler.NewUserHandler(userService),
		Boats:    handler.NewBoatHandler(boatService),
		Trips:    handler.NewTripHandler(tripService),
		Bookings: handler.NewBookingHandler(bookingService),
		Logbook:  handler.NewLogbookHandler(logbookService),
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RealIP)
	router.Mount("/", handler.NewRouter(cfg.Server.APIPrefix, handlers.Routes(), resolver))

	// Apply global middleware
	wrapped := middleware.Chain(
		router,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("prefix", cfg.Server.APIPrefix),
			slog.String("driver", cfg.Database.Driver),
			slog.String("version", version),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
