package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

const boatColumns = `id::text, name, description, brand, year_built, photo_url, license_type,
	boat_type, equipment, deposit::text, max_capacity, bed_count, home_port, latitude, longitude,
	engine_type, engine_power, owner_id::text, created_at, updated_at`

// BoatRepo is the Postgres implementation of service.BoatRepository.
type BoatRepo struct {
	db db
}

// NewBoatRepo constructs a BoatRepo.
func NewBoatRepo(db db) *BoatRepo {
	return &BoatRepo{db: db}
}

func boatArgs(b *model.Boat) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           b.ID,
		"name":         b.Name,
		"description":  b.Description,
		"brand":        b.Brand,
		"year_built":   b.YearBuilt,
		"photo_url":    b.PhotoURL,
		"license_type": b.LicenseType,
		"boat_type":    b.BoatType,
		"equipment":    orEmpty(b.Equipment),
		"deposit":      b.Deposit.Decimal.String(),
		"max_capacity": b.MaxCapacity,
		"bed_count":    b.BedCount,
		"home_port":    b.HomePort,
		"latitude":     b.Latitude,
		"longitude":    b.Longitude,
		"engine_type":  b.EngineType,
		"engine_power": b.EnginePower,
		"owner_id":     b.OwnerID,
	}
}

// Create inserts a boat and fills in its timestamps.
func (r *BoatRepo) Create(ctx context.Context, b *model.Boat) error {
	const q = `
		INSERT INTO boats (id, name, description, brand, year_built, photo_url, license_type,
			boat_type, equipment, deposit, max_capacity, bed_count, home_port, latitude, longitude,
			engine_type, engine_power, owner_id)
		VALUES (@id, @name, @description, @brand, @year_built, @photo_url, @license_type,
			@boat_type, @equipment, @deposit::numeric, @max_capacity, @bed_count, @home_port, @latitude, @longitude,
			@engine_type, @engine_power, @owner_id)
		RETURNING created_at, updated_at`

	if err := r.db.QueryRow(ctx, q, boatArgs(b)).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return mapWriteError("postgres.BoatRepo.Create", err)
	}
	return nil
}

// GetByID retrieves a boat by primary key.
func (r *BoatRepo) GetByID(ctx context.Context, id string) (*model.Boat, error) {
	if !validID(id) {
		return nil, nil
	}
	q := `SELECT ` + boatColumns + ` FROM boats WHERE id = @id`
	b, err := scanBoat(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres.BoatRepo.GetByID: %w", err)
	}
	return b, nil
}

// List returns boats matching filter, oldest first. The bounding box is
// applied by the caller.
func (r *BoatRepo) List(ctx context.Context, filter model.BoatFilter) ([]*model.Boat, error) {
	var conditions []string
	args := pgx.NamedArgs{}

	if filter.BoatType != "" {
		conditions = append(conditions, "boat_type = @boat_type")
		args["boat_type"] = filter.BoatType
	}
	if filter.HomePort != "" {
		conditions = append(conditions, "home_port ILIKE @home_port")
		args["home_port"] = "%" + likeEscape(filter.HomePort) + "%"
	}
	if filter.MinCapacity != nil {
		conditions = append(conditions, "max_capacity >= @min_capacity")
		args["min_capacity"] = *filter.MinCapacity
	}
	if filter.OwnerID != "" {
		if !validID(filter.OwnerID) {
			return []*model.Boat{}, nil
		}
		conditions = append(conditions, "owner_id = @owner_id")
		args["owner_id"] = filter.OwnerID
	}

	q := `SELECT ` + boatColumns + ` FROM boats` + where(conditions) + ` ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.BoatRepo.List: %w", err)
	}
	defer rows.Close()

	boats := make([]*model.Boat, 0)
	for rows.Next() {
		b, err := scanBoat(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.BoatRepo.List: scan: %w", err)
		}
		boats = append(boats, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.BoatRepo.List: rows: %w", err)
	}
	return boats, nil
}

// CountByOwner counts the boats owned by a user.
func (r *BoatRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	if !validID(ownerID) {
		return 0, nil
	}
	return count(ctx, r.db, "postgres.BoatRepo.CountByOwner",
		`SELECT count(*) FROM boats WHERE owner_id = @owner_id`, pgx.NamedArgs{"owner_id": ownerID})
}

// Update overwrites every mutable field of a boat.
func (r *BoatRepo) Update(ctx context.Context, b *model.Boat) error {
	const q = `
		UPDATE boats
		SET name         = @name,
		    description  = @description,
		    brand        = @brand,
		    year_built   = @year_built,
		    photo_url    = @photo_url,
		    license_type = @license_type,
		    boat_type    = @boat_type,
		    equipment    = @equipment,
		    deposit      = @deposit::numeric,
		    max_capacity = @max_capacity,
		    bed_count    = @bed_count,
		    home_port    = @home_port,
		    latitude     = @latitude,
		    longitude    = @longitude,
		    engine_type  = @engine_type,
		    engine_power = @engine_power,
		    owner_id     = @owner_id,
		    updated_at   = now()
		WHERE id = @id
		RETURNING updated_at`

	if !validID(b.ID) {
		return fmt.Errorf("postgres.BoatRepo.Update: %w", database.ErrNotFound)
	}
	if err := r.db.QueryRow(ctx, q, boatArgs(b)).Scan(&b.UpdatedAt); err != nil {
		if notFound(err) {
			return fmt.Errorf("postgres.BoatRepo.Update: %w", database.ErrNotFound)
		}
		return fmt.Errorf("postgres.BoatRepo.Update: %w", err)
	}
	return nil
}

// Delete removes a boat. Deleting a missing boat is not an error.
func (r *BoatRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM boats WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("postgres.BoatRepo.Delete: %w", err)
	}
	return nil
}

func scanBoat(s scanner) (*model.Boat, error) {
	var (
		b       model.Boat
		deposit string
	)
	err := s.Scan(&b.ID, &b.Name, &b.Description, &b.Brand, &b.YearBuilt, &b.PhotoURL, &b.LicenseType,
		&b.BoatType, &b.Equipment, &deposit, &b.MaxCapacity, &b.BedCount, &b.HomePort, &b.Latitude,
		&b.Longitude, &b.EngineType, &b.EnginePower, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if b.Deposit, err = model.ParseMoney(deposit); err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	if b.Equipment == nil {
		b.Equipment = []string{}
	}
	return &b, nil
}
