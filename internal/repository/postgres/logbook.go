package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

const logbookColumns = `id::text, user_id::text, fish_species, photo_url, comment, length, weight,
	location, fishing_date, released, created_at, updated_at`

// LogbookRepo is the Postgres implementation of service.LogbookRepository.
type LogbookRepo struct {
	db db
}

// NewLogbookRepo constructs a LogbookRepo.
func NewLogbookRepo(db db) *LogbookRepo {
	return &LogbookRepo{db: db}
}

func logbookArgs(e *model.LogbookEntry) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           e.ID,
		"user_id":      e.UserID,
		"fish_species": e.FishSpecies,
		"photo_url":    e.PhotoURL,
		"comment":      e.Comment,
		"length":       e.Length,
		"weight":       e.Weight,
		"location":     e.Location,
		"fishing_date": e.FishingDate,
		"released":     e.Released,
	}
}

// Create inserts an entry and fills in its timestamps.
func (r *LogbookRepo) Create(ctx context.Context, e *model.LogbookEntry) error {
	const q = `
		INSERT INTO logbook_entries (id, user_id, fish_species, photo_url, comment, length, weight,
			location, fishing_date, released)
		VALUES (@id, @user_id, @fish_species, @photo_url, @comment, @length, @weight,
			@location, @fishing_date, @released)
		RETURNING created_at, updated_at`

	if err := r.db.QueryRow(ctx, q, logbookArgs(e)).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return mapWriteError("postgres.LogbookRepo.Create", err)
	}
	return nil
}

// GetByID retrieves an entry by primary key.
func (r *LogbookRepo) GetByID(ctx context.Context, id string) (*model.LogbookEntry, error) {
	if !validID(id) {
		return nil, nil
	}
	q := `SELECT ` + logbookColumns + ` FROM logbook_entries WHERE id = @id`
	e, err := scanLogbookEntry(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres.LogbookRepo.GetByID: %w", err)
	}
	return e, nil
}

// List returns entries matching filter, oldest first. Date bounds are
// inclusive string comparisons on the YYYY-MM-DD fishing date.
func (r *LogbookRepo) List(ctx context.Context, filter model.LogbookFilter) ([]*model.LogbookEntry, error) {
	var conditions []string
	args := pgx.NamedArgs{}

	if filter.UserID != "" {
		if !validID(filter.UserID) {
			return []*model.LogbookEntry{}, nil
		}
		conditions = append(conditions, "user_id = @user_id")
		args["user_id"] = filter.UserID
	}
	if filter.FishSpecies != "" {
		conditions = append(conditions, "fish_species ILIKE @fish_species")
		args["fish_species"] = "%" + likeEscape(filter.FishSpecies) + "%"
	}
	if filter.StartDate != "" {
		conditions = append(conditions, "fishing_date >= @start_date")
		args["start_date"] = filter.StartDate
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "fishing_date <= @end_date")
		args["end_date"] = filter.EndDate
	}

	q := `SELECT ` + logbookColumns + ` FROM logbook_entries` + where(conditions) + ` ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.LogbookRepo.List: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.LogbookEntry, 0)
	for rows.Next() {
		e, err := scanLogbookEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.LogbookRepo.List: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.LogbookRepo.List: rows: %w", err)
	}
	return entries, nil
}

// Update overwrites the mutable fields of an entry.
func (r *LogbookRepo) Update(ctx context.Context, e *model.LogbookEntry) error {
	const q = `
		UPDATE logbook_entries
		SET fish_species = @fish_species,
		    photo_url    = @photo_url,
		    comment      = @comment,
		    length       = @length,
		    weight       = @weight,
		    location     = @location,
		    fishing_date = @fishing_date,
		    released     = @released,
		    updated_at   = now()
		WHERE id = @id
		RETURNING updated_at`

	if !validID(e.ID) {
		return fmt.Errorf("postgres.LogbookRepo.Update: %w", database.ErrNotFound)
	}
	if err := r.db.QueryRow(ctx, q, logbookArgs(e)).Scan(&e.UpdatedAt); err != nil {
		if notFound(err) {
			return fmt.Errorf("postgres.LogbookRepo.Update: %w", database.ErrNotFound)
		}
		return fmt.Errorf("postgres.LogbookRepo.Update: %w", err)
	}
	return nil
}

// Delete removes an entry. Deleting a missing entry is not an error.
func (r *LogbookRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM logbook_entries WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("postgres.LogbookRepo.Delete: %w", err)
	}
	return nil
}

func scanLogbookEntry(s scanner) (*model.LogbookEntry, error) {
	var e model.LogbookEntry
	err := s.Scan(&e.ID, &e.UserID, &e.FishSpecies, &e.PhotoURL, &e.Comment, &e.Length, &e.Weight,
		&e.Location, &e.FishingDate, &e.Released, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
