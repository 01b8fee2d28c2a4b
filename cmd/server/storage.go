package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/fisherfans/api/internal/config"
	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/repository"
	"github.com/fisherfans/api/internal/repository/postgres"
	"github.com/fisherfans/api/internal/service"
	"github.com/fisherfans/api/migrations"
)

// storage bundles the repositories of the selected driver
type storage struct {
	users    service.UserRepository
	boats    service.BoatRepository
	trips    service.TripRepository
	bookings service.BookingRepository
	logbook  service.LogbookRepository
	pinger   database.Pinger
	close    func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return openSurreal(ctx, cfg)
	}
}

func openSurreal(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		User:      cfg.User,
		Password:  cfg.Password,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := migrations.ApplySurreal(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	slog.Info("connected to database",
		slog.String("driver", config.DriverSurrealDB),
		slog.String("endpoint", db.Endpoint()),
		slog.String("namespace", cfg.Namespace),
		slog.String("database", cfg.Database),
	)

	return &storage{
		users:    repository.NewUserRepository(db),
		boats:    repository.NewBoatRepository(db),
		trips:    repository.NewTripRepository(db),
		bookings: repository.NewBookingRepository(db),
		logbook:  repository.NewLogbookRepository(db),
		pinger:   db,
		close:    func() { _ = db.Close() },
	}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*storage, error) {
	pool, err := postgres.Open(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		sqlDB := stdlib.OpenDBFromPool(pool)
		err := migrations.ApplyPostgres(ctx, sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
	}

	slog.Info("connected to database", slog.String("driver", config.DriverPostgres))

	return &storage{
		users:    postgres.NewUserRepo(pool),
		boats:    postgres.NewBoatRepo(pool),
		trips:    postgres.NewTripRepo(pool),
		bookings: postgres.NewBookingRepo(pool),
		logbook:  postgres.NewLogbookRepo(pool),
		pinger:   pool,
		close:    pool.Close,
	}, nil
}
