package repository

import (
	"context"
	"errors"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// BookingRepository handles booking data access
type BookingRepository struct {
	db database.Database
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

func bookingAssignments(booking *model.Booking) []assignment {
	return []assignment{
		{"trip_id", booking.TripID},
		{"user_id", booking.UserID},
		{"selected_date", booking.SelectedDate},
		{"seats", booking.Seats},
		{"total_price", booking.TotalPrice.Decimal.String()},
	}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	vars := map[string]interface{}{"id": booking.ID}
	query := `CREATE type::thing("booking", $id) SET ` + setClause(bookingAssignments(booking), vars) +
		`, created_on = time::now(), updated_on = time::now()`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "booking already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) > 0 {
		booking.CreatedAt = getTimeValue(rows[0], "created_on")
		booking.UpdatedAt = getTimeValue(rows[0], "updated_on")
	}
	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing("booking", $id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := firstRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseBooking(data), nil
}

// List returns bookings matching filter, oldest first
func (r *BookingRepository) List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.TripID != "" {
		conditions = append(conditions, "trip_id = $trip_id")
		vars["trip_id"] = filter.TripID
	}
	if filter.UserID != "" {
		conditions = append(conditions, "user_id = $user_id")
		vars["user_id"] = filter.UserID
	}

	result, err := r.db.Query(ctx, "SELECT * FROM booking"+where(conditions)+" ORDER BY created_on ASC", vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	bookings := make([]*model.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, parseBooking(row))
	}
	return bookings, nil
}

// CountByTrip counts the bookings on a trip
func (r *BookingRepository) CountByTrip(ctx context.Context, tripID string) (int, error) {
	query := `SELECT count() AS count FROM booking WHERE trip_id = $trip_id GROUP ALL`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"trip_id": tripID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// Update overwrites the mutable fields of a booking
func (r *BookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	vars := map[string]interface{}{"id": booking.ID}
	query := `UPDATE booking SET ` + setClause(bookingAssignments(booking), vars) +
		`, updated_on = time::now() WHERE id = type::thing("booking", $id)`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryResults(result)
	if len(rows) == 0 {
		return database.ErrNotFound
	}
	booking.UpdatedAt = getTimeValue(rows[0], "updated_on")
	return nil
}

// Delete deletes a booking
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::thing("booking", $id)`, map[string]interface{}{"id": id})
}

func parseBooking(data map[string]interface{}) *model.Booking {
	return &model.Booking{
		ID:           recordKey(data["id"]),
		TripID:       getString(data, "trip_id"),
		UserID:       getString(data, "user_id"),
		SelectedDate: getString(data, "selected_date"),
		Seats:        getInt(data, "seats"),
		TotalPrice:   getMoney(data, "total_price"),
		CreatedAt:    getTimeValue(data, "created_on"),
		UpdatedAt:    getTimeValue(data, "updated_on"),
	}
}
