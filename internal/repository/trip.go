package repository

import (
	"context"
	"errors"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// TripRepository handles trip data access
type TripRepository struct {
	db database.Database
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db database.Database) *TripRepository {
	return &TripRepository{db: db}
}

func tripAssignments(trip *model.Trip) []assignment {
	return []assignment{
		{"title", trip.Title},
		{"practical_info", opt(trip.PracticalInfo)},
		{"trip_type", trip.TripType},
		{"pricing_type", trip.PricingType},
		{"start_dates", stringsOrEmpty(trip.StartDates)},
		{"end_dates", stringsOrEmpty(trip.EndDates)},
		{"start_times", stringsOrEmpty(trip.StartTimes)},
		{"end_times", stringsOrEmpty(trip.EndTimes)},
		{"passenger_count", trip.PassengerCount},
		{"price", trip.Price.Decimal.String()},
		{"organizer_id", trip.OrganizerID},
		{"boat_id", trip.BoatID},
	}
}

// Create creates a new trip
func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	vars := map[string]interface{}{"id": trip.ID}
	query := `CREATE type::thing("trip", $id) SET ` + setClause(tripAssignments(trip), vars) +
		`, created_on = time::now(), updated_on = time::now()`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "trip already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) > 0 {
		trip.CreatedAt = getTimeValue(rows[0], "created_on")
		trip.UpdatedAt = getTimeValue(rows[0], "updated_on")
	}
	return nil
}

// GetByID retrieves a trip by ID
func (r *TripRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing("trip", $id)`, map[string]interface{}{"id": id})
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
	return parseTrip(data), nil
}

// List returns trips matching filter, oldest first. StartDate is not applied here.
func (r *TripRepository) List(ctx context.Context, filter model.TripFilter) ([]*model.Trip, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.TripType != "" {
		conditions = append(conditions, "trip_type = $trip_type")
		vars["trip_type"] = filter.TripType
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "<decimal> price >= <decimal> $min_price")
		vars["min_price"] = filter.MinPrice.Decimal.String()
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "<decimal> price <= <decimal> $max_price")
		vars["max_price"] = filter.MaxPrice.Decimal.String()
	}
	if filter.BoatID != "" {
		conditions = append(conditions, "boat_id = $boat_id")
		vars["boat_id"] = filter.BoatID
	}
	if filter.OrganizerID != "" {
		conditions = append(conditions, "organizer_id = $organizer_id")
		vars["organizer_id"] = filter.OrganizerID
	}

	result, err := r.db.Query(ctx, "SELECT * FROM trip"+where(conditions)+" ORDER BY created_on ASC", vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	trips := make([]*model.Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, parseTrip(row))
	}
	return trips, nil
}

// CountByBoat counts the trips published on a boat
func (r *TripRepository) CountByBoat(ctx context.Context, boatID string) (int, error) {
	query := `SELECT count() AS count FROM trip WHERE boat_id = $boat_id GROUP ALL`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"boat_id": boatID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// Update overwrites every mutable field of a trip
func (r *TripRepository) Update(ctx context.Context, trip *model.Trip) error {
	vars := map[string]interface{}{"id": trip.ID}
	query := `UPDATE trip SET ` + setClause(tripAssignments(trip), vars) +
		`, updated_on = time::now() WHERE id = type::thing("trip", $id)`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryResults(result)
	if len(rows) == 0 {
		return database.ErrNotFound
	}
	trip.UpdatedAt = getTimeValue(rows[0], "updated_on")
	return nil
}

// Delete deletes a trip
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::thing("trip", $id)`, map[string]interface{}{"id": id})
}

func parseTrip(data map[string]interface{}) *model.Trip {
	return &model.Trip{
		ID:             recordKey(data["id"]),
		Title:          getString(data, "title"),
		PracticalInfo:  getStringPtr(data, "practical_info"),
		TripType:       getString(data, "trip_type"),
		PricingType:    getString(data, "pricing_type"),
		StartDates:     getStringSlice(data, "start_dates"),
		EndDates:       getStringSlice(data, "end_dates"),
		StartTimes:     getStringSlice(data, "start_times"),
		EndTimes:       getStringSlice(data, "end_times"),
		PassengerCount: getInt(data, "passenger_count"),
		Price:          getMoney(data, "price"),
		OrganizerID:    getString(data, "organizer_id"),
		BoatID:         getString(data, "boat_id"),
		CreatedAt:      getTimeValue(data, "created_on"),
		UpdatedAt:      getTimeValue(data, "updated_on"),
	}
}
