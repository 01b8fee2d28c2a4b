package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

const bookingColumns = `id::text, trip_id::text, user_id::text, selected_date, seats,
	total_price::text, created_at, updated_at`

// BookingRepo is the Postgres implementation of service.BookingRepository.
type BookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo.
func NewBookingRepo(db db) *BookingRepo {
	return &BookingRepo{db: db}
}

func bookingArgs(b *model.Booking) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":            b.ID,
		"trip_id":       b.TripID,
		"user_id":       b.UserID,
		"selected_date": b.SelectedDate,
		"seats":         b.Seats,
		"total_price":   b.TotalPrice.Decimal.String(),
	}
}

// Create inserts a booking and fills in its timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `
		INSERT INTO bookings (id, trip_id, user_id, selected_date, seats, total_price)
		VALUES (@id, @trip_id, @user_id, @selected_date, @seats, @total_price::numeric)
		RETURNING created_at, updated_at`

	if err := r.db.QueryRow(ctx, q, bookingArgs(b)).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapWriteError("postgres.BookingRepo.Create", err)
	}
	return nil
}

// GetByID retrieves a booking by primary key.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if !validID(id) {
		return nil, nil
	}
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`
	b, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres.BookingRepo.GetByID: %w", err)
	}
	return b, nil
}

// List returns bookings matching filter, oldest first.
func (r *BookingRepo) List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	var conditions []string
	args := pgx.NamedArgs{}

	for column, value := range map[string]string{"trip_id": filter.TripID, "user_id": filter.UserID} {
		if value == "" {
			continue
		}
		if !validID(value) {
			return []*model.Booking{}, nil
		}
		conditions = append(conditions, column+" = @"+column)
		args[column] = value
	}

	q := `SELECT ` + bookingColumns + ` FROM bookings` + where(conditions) + ` ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.BookingRepo.List: %w", err)
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.BookingRepo.List: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.BookingRepo.List: rows: %w", err)
	}
	return bookings, nil
}

// CountByTrip counts the bookings on a trip.
func (r *BookingRepo) CountByTrip(ctx context.Context, tripID string) (int, error) {
	if !validID(tripID) {
		return 0, nil
	}
	return count(ctx, r.db, "postgres.BookingRepo.CountByTrip",
		`SELECT count(*) FROM bookings WHERE trip_id = @trip_id`, pgx.NamedArgs{"trip_id": tripID})
}

// Update overwrites the mutable fields of a booking.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	const q = `
		UPDATE bookings
		SET selected_date = @selected_date,
		    seats         = @seats,
		    total_price   = @total_price::numeric,
		    updated_at    = now()
		WHERE id = @id
		RETURNING updated_at`

	if !validID(b.ID) {
		return fmt.Errorf("postgres.BookingRepo.Update: %w", database.ErrNotFound)
	}
	if err := r.db.QueryRow(ctx, q, bookingArgs(b)).Scan(&b.UpdatedAt); err != nil {
		if notFound(err) {
			return fmt.Errorf("postgres.BookingRepo.Update: %w", database.ErrNotFound)
		}
		return fmt.Errorf("postgres.BookingRepo.Update: %w", err)
	}
	return nil
}

// Delete removes a booking. Deleting a missing booking is not an error.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("postgres.BookingRepo.Delete: %w", err)
	}
	return nil
}

func scanBooking(s scanner) (*model.Booking, error) {
	var (
		b     model.Booking
		total string
	)
	err := s.Scan(&b.ID, &b.TripID, &b.UserID, &b.SelectedDate, &b.Seats, &total, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if b.TotalPrice, err = model.ParseMoney(total); err != nil {
		return nil, fmt.Errorf("total_price: %w", err)
	}
	return &b, nil
}
