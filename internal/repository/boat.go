package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// BoatRepository handles boat data access
type BoatRepository struct {
	db database.Database
}

// NewBoatRepository creates a new boat repository
func NewBoatRepository(db database.Database) *BoatRepository {
	return &BoatRepository{db: db}
}

func boatAssignments(boat *model.Boat) []assignment {
	return []assignment{
		{"name", boat.Name},
		{"description", opt(boat.Description)},
		{"brand", opt(boat.Brand)},
		{"year_built", opt(boat.YearBuilt)},
		{"photo_url", opt(boat.PhotoURL)},
		{"license_type", opt(boat.LicenseType)},
		{"boat_type", boat.BoatType},
		{"equipment", stringsOrEmpty(boat.Equipment)},
		{"deposit", boat.Deposit.Decimal.String()},
		{"max_capacity", boat.MaxCapacity},
		{"bed_count", opt(boat.BedCount)},
		{"home_port", boat.HomePort},
		{"latitude", opt(boat.Latitude)},
		{"longitude", opt(boat.Longitude)},
		{"engine_type", opt(boat.EngineType)},
		{"engine_power", opt(boat.EnginePower)},
		{"owner_id", boat.OwnerID},
	}
}

// Create creates a new boat
func (r *BoatRepository) Create(ctx context.Context, boat *model.Boat) error {
	vars := map[string]interface{}{"id": boat.ID}
	query := `CREATE type::thing("boat", $id) SET ` + setClause(boatAssignments(boat), vars) +
		`, created_on = time::now(), updated_on = time::now()`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "boat already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) > 0 {
		boat.CreatedAt = getTimeValue(rows[0], "created_on")
		boat.UpdatedAt = getTimeValue(rows[0], "updated_on")
	}
	return nil
}

// GetByID retrieves a boat by ID
func (r *BoatRepository) GetByID(ctx context.Context, id string) (*model.Boat, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing("boat", $id)`, map[string]interface{}{"id": id})
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
	return parseBoat(data), nil
}

// List returns boats matching filter, oldest first. The bounding box is not
// applied here.
func (r *BoatRepository) List(ctx context.Context, filter model.BoatFilter) ([]*model.Boat, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.BoatType != "" {
		conditions = append(conditions, "boat_type = $boat_type")
		vars["boat_type"] = filter.BoatType
	}
	if filter.HomePort != "" {
		conditions = append(conditions, "string::contains(string::lowercase(home_port), $home_port)")
		vars["home_port"] = strings.ToLower(filter.HomePort)
	}
	if filter.MinCapacity != nil {
		conditions = append(conditions, "max_capacity >= $min_capacity")
		vars["min_capacity"] = *filter.MinCapacity
	}
	if filter.OwnerID != "" {
		conditions = append(conditions, "owner_id = $owner_id")
		vars["owner_id"] = filter.OwnerID
	}

	result, err := r.db.Query(ctx, "SELECT * FROM boat"+where(conditions)+" ORDER BY created_on ASC", vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	boats := make([]*model.Boat, 0, len(rows))
	for _, row := range rows {
		boats = append(boats, parseBoat(row))
	}
	return boats, nil
}

// CountByOwner counts the boats owned by a user
func (r *BoatRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT count() AS count FROM boat WHERE owner_id = $owner_id GROUP ALL`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"owner_id": ownerID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// Update overwrites every mutable field of a boat
func (r *BoatRepository) Update(ctx context.Context, boat *model.Boat) error {
	vars := map[string]interface{}{"id": boat.ID}
	query := `UPDATE boat SET ` + setClause(boatAssignments(boat), vars) +
		`, updated_on = time::now() WHERE id = type::thing("boat", $id)`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryResults(result)
	if len(rows) == 0 {
		return database.ErrNotFound
	}
	boat.UpdatedAt = getTimeValue(rows[0], "updated_on")
	return nil
}

// Delete deletes a boat
func (r *BoatRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::thing("boat", $id)`, map[string]interface{}{"id": id})
}

func parseBoat(data map[string]interface{}) *model.Boat {
	return &model.Boat{
		ID:          recordKey(data["id"]),
		Name:        getString(data, "name"),
		Description: getStringPtr(data, "description"),
		Brand:       getStringPtr(data, "brand"),
		YearBuilt:   getIntPtr(data, "year_built"),
		PhotoURL:    getStringPtr(data, "photo_url"),
		LicenseType: getStringPtr(data, "license_type"),
		BoatType:    getString(data, "boat_type"),
		Equipment:   getStringSlice(data, "equipment"),
		Deposit:     getMoney(data, "deposit"),
		MaxCapacity: getInt(data, "max_capacity"),
		BedCount:    getIntPtr(data, "bed_count"),
		HomePort:    getString(data, "home_port"),
		Latitude:    getFloatPtr(data, "latitude"),
		Longitude:   getFloatPtr(data, "longitude"),
		EngineType:  getStringPtr(data, "engine_type"),
		EnginePower: getIntPtr(data, "engine_power"),
		OwnerID:     getString(data, "owner_id"),
		CreatedAt:   getTimeValue(data, "created_on"),
		UpdatedAt:   getTimeValue(data, "updated_on"),
	}
}
