package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// LogbookRepository handles logbook entry data access
type LogbookRepository struct {
	db database.Database
}

// NewLogbookRepository creates a new logbook repository
func NewLogbookRepository(db database.Database) *LogbookRepository {
	return &LogbookRepository{db: db}
}

func logbookAssignments(entry *model.LogbookEntry) []assignment {
	return []assignment{
		{"user_id", entry.UserID},
		{"fish_species", entry.FishSpecies},
		{"photo_url", opt(entry.PhotoURL)},
		{"comment", opt(entry.Comment)},
		{"length", opt(entry.Length)},
		{"weight", opt(entry.Weight)},
		{"location", opt(entry.Location)},
		{"fishing_date", entry.FishingDate},
		{"released", entry.Released},
	}
}

// Create creates a new logbook entry
func (r *LogbookRepository) Create(ctx context.Context, entry *model.LogbookEntry) error {
	vars := map[string]interface{}{"id": entry.ID}
	query := `CREATE type::thing("logbook_entry", $id) SET ` + setClause(logbookAssignments(entry), vars) +
		`, created_on = time::now(), updated_on = time::now()`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "logbook entry already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) > 0 {
		entry.CreatedAt = getTimeValue(rows[0], "created_on")
		entry.UpdatedAt = getTimeValue(rows[0], "updated_on")
	}
	return nil
}

// GetByID retrieves an entry by ID
func (r *LogbookRepository) GetByID(ctx context.Context, id string) (*model.LogbookEntry, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::thing("logbook_entry", $id)`, map[string]interface{}{"id": id})
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
	return parseLogbookEntry(data), nil
}

// List returns entries matching filter, oldest first. Date bounds are inclusive.
func (r *LogbookRepository) List(ctx context.Context, filter model.LogbookFilter) ([]*model.LogbookEntry, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.UserID != "" {
		conditions = append(conditions, "user_id = $user_id")
		vars["user_id"] = filter.UserID
	}
	if filter.FishSpecies != "" {
		conditions = append(conditions, "string::contains(string::lowercase(fish_species), $fish_species)")
		vars["fish_species"] = strings.ToLower(filter.FishSpecies)
	}
	if filter.StartDate != "" {
		conditions = append(conditions, "fishing_date >= $start_date")
		vars["start_date"] = filter.StartDate
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "fishing_date <= $end_date")
		vars["end_date"] = filter.EndDate
	}

	result, err := r.db.Query(ctx, "SELECT * FROM logbook_entry"+where(conditions)+" ORDER BY created_on ASC", vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	entries := make([]*model.LogbookEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, parseLogbookEntry(row))
	}
	return entries, nil
}

// Update overwrites the mutable fields of an entry
func (r *LogbookRepository) Update(ctx context.Context, entry *model.LogbookEntry) error {
	vars := map[string]interface{}{"id": entry.ID}
	query := `UPDATE logbook_entry SET ` + setClause(logbookAssignments(entry), vars) +
		`, updated_on = time::now() WHERE id = type::thing("logbook_entry", $id)`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := extractQueryResults(result)
	if len(rows) == 0 {
		return database.ErrNotFound
	}
	entry.UpdatedAt = getTimeValue(rows[0], "updated_on")
	return nil
}

// Delete deletes an entry
func (r *LogbookRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::thing("logbook_entry", $id)`, map[string]interface{}{"id": id})
}

func parseLogbookEntry(data map[string]interface{}) *model.LogbookEntry {
	return &model.LogbookEntry{
		ID:          recordKey(data["id"]),
		UserID:      getString(data, "user_id"),
		FishSpecies: getString(data, "fish_species"),
		PhotoURL:    getStringPtr(data, "photo_url"),
		Comment:     getStringPtr(data, "comment"),
		Length:      getFloatPtr(data, "length"),
		Weight:      getFloatPtr(data, "weight"),
		Location:    getStringPtr(data, "location"),
		FishingDate: getString(data, "fishing_date"),
		Released:    getBool(data, "released"),
		CreatedAt:   getTimeValue(data, "created_on"),
		UpdatedAt:   getTimeValue(data, "updated_on"),
	}
}
