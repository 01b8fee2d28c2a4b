package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

const tripColumns = `id::text, title, practical_info, trip_type, pricing_type, start_dates, end_dates,
	start_times, end_times, passenger_count, price::text, organizer_id::text, boat_id::text,
	created_at, updated_at`

// TripRepo is the Postgres implementation of service.TripRepository.
type TripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo.
func NewTripRepo(db db) *TripRepo {
	return &TripRepo{db: db}
}

func tripArgs(t *model.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":              t.ID,
		"title":           t.Title,
		"practical_info":  t.PracticalInfo,
		"trip_type":       t.TripType,
		"pricing_type":    t.PricingType,
		"start_dates":     orEmpty(t.StartDates),
		"end_dates":       orEmpty(t.EndDates),
		"start_times":     orEmpty(t.StartTimes),
		"end_times":       orEmpty(t.EndTimes),
		"passenger_count": t.PassengerCount,
		"price":           t.Price.Decimal.String(),
		"organizer_id":    t.OrganizerID,
		"boat_id":         t.BoatID,
	}
}

// Create inserts a trip and fills in its timestamps.
func (r *TripRepo) Create(ctx context.Context, t *model.Trip) error {
	const q = `
		INSERT INTO trips (id, title, practical_info, trip_type, pricing_type, start_dates, end_dates,
			start_times, end_times, passenger_count, price, organizer_id, boat_id)
		VALUES (@id, @title, @practical_info, @trip_type, @pricing_type, @start_dates, @end_dates,
			@start_times, @end_times, @passenger_count, @price::numeric, @organizer_id, @boat_id)
		RETURNING created_at, updated_at`

	if err := r.db.QueryRow(ctx, q, tripArgs(t)).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return mapWriteError("postgres.TripRepo.Create", err)
	}
	return nil
}

// GetByID retrieves a trip by primary key.
func (r *TripRepo) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	if !validID(id) {
		return nil, nil
	}
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`
	t, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres.TripRepo.GetByID: %w", err)
	}
	return t, nil
}

// List returns trips matching filter, oldest first. StartDate is applied by
// the caller.
func (r *TripRepo) List(ctx context.Context, filter model.TripFilter) ([]*model.Trip, error) {
	var conditions []string
	args := pgx.NamedArgs{}

	if filter.TripType != "" {
		conditions = append(conditions, "trip_type = @trip_type")
		args["trip_type"] = filter.TripType
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price >= @min_price::numeric")
		args["min_price"] = filter.MinPrice.Decimal.String()
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price <= @max_price::numeric")
		args["max_price"] = filter.MaxPrice.Decimal.String()
	}
	if filter.BoatID != "" {
		if !validID(filter.BoatID) {
			return []*model.Trip{}, nil
		}
		conditions = append(conditions, "boat_id = @boat_id")
		args["boat_id"] = filter.BoatID
	}
	if filter.OrganizerID != "" {
		if !validID(filter.OrganizerID) {
			return []*model.Trip{}, nil
		}
		conditions = append(conditions, "organizer_id = @organizer_id")
		args["organizer_id"] = filter.OrganizerID
	}

	q := `SELECT ` + tripColumns + ` FROM trips` + where(conditions) + ` ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := make([]*model.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.TripRepo.List: rows: %w", err)
	}
	return trips, nil
}

// CountByBoat counts the trips published on a boat.
func (r *TripRepo) CountByBoat(ctx context.Context, boatID string) (int, error) {
	if !validID(boatID) {
		return 0, nil
	}
	return count(ctx, r.db, "postgres.TripRepo.CountByBoat",
		`SELECT count(*) FROM trips WHERE boat_id = @boat_id`, pgx.NamedArgs{"boat_id": boatID})
}

// Update overwrites every mutable field of a trip.
func (r *TripRepo) Update(ctx context.Context, t *model.Trip) error {
	const q = `
		UPDATE trips
		SET title           = @title,
		    practical_info  = @practical_info,
		    trip_type       = @trip_type,
		    pricing_type    = @pricing_type,
		    start_dates     = @start_dates,
		    end_dates       = @end_dates,
		    start_times     = @start_times,
		    end_times       = @end_times,
		    passenger_count = @passenger_count,
		    price           = @price::numeric,
		    organizer_id    = @organizer_id,
		    boat_id         = @boat_id,
		    updated_at      = now()
		WHERE id = @id
		RETURNING updated_at`

	if !validID(t.ID) {
		return fmt.Errorf("postgres.TripRepo.Update: %w", database.ErrNotFound)
	}
	if err := r.db.QueryRow(ctx, q, tripArgs(t)).Scan(&t.UpdatedAt); err != nil {
		if notFound(err) {
			return fmt.Errorf("postgres.TripRepo.Update: %w", database.ErrNotFound)
		}
		return fmt.Errorf("postgres.TripRepo.Update: %w", err)
	}
	return nil
}

// Delete removes a trip. Deleting a missing trip is not an error.
func (r *TripRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("postgres.TripRepo.Delete: %w", err)
	}
	return nil
}

func scanTrip(s scanner) (*model.Trip, error) {
	var (
		t     model.Trip
		price string
	)
	err := s.Scan(&t.ID, &t.Title, &t.PracticalInfo, &t.TripType, &t.PricingType, &t.StartDates,
		&t.EndDates, &t.StartTimes, &t.EndTimes, &t.PassengerCount, &price, &t.OrganizerID, &t.BoatID,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if t.Price, err = model.ParseMoney(price); err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	t.StartDates = orEmpty(t.StartDates)
	t.EndDates = orEmpty(t.EndDates)
	t.StartTimes = orEmpty(t.StartTimes)
	t.EndTimes = orEmpty(t.EndTimes)
	return &t, nil
}
