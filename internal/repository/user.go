package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

func userAssignments(user *model.User) []assignment {
	return []assignment{
		{"last_name", user.LastName},
		{"first_name", user.FirstName},
		{"email", user.Email},
		{"hash", opt(user.PasswordHash)},
		{"city", user.City},
		{"phone", opt(user.Phone)},
		{"photo_url", opt(user.PhotoURL)},
		{"status", string(user.Status)},
		{"boat_license_number", opt(user.BoatLicenseNumber)},
		{"insurance_number", opt(user.InsuranceNumber)},
		{"company_name", opt(user.CompanyName)},
		{"activity_type", opt(user.ActivityType)},
		{"birth_date", opt(user.BirthDate)},
		{"address", opt(user.Address)},
		{"postal_code", opt(user.PostalCode)},
		{"languages", stringsOrEmpty(user.Languages)},
		{"anonymized_on", optTime(user.AnonymizedAt)},
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	vars := map[string]interface{}{"id": user.ID}
	query := `CREATE type::thing("user", $id) SET ` + setClause(userAssignments(user), vars) +
		`, created_on = time::now(), updated_on = time::now()`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "email already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) > 0 {
		user.CreatedAt = getTimeValue(rows[0], "created_on")
		user.UpdatedAt = getTimeValue(rows[0], "updated_on")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::thing("user", $id)`
	return r.getOne(ctx, query, map[string]interface{}{"id": id})
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE string::lowercase(email) = $email LIMIT 1`
	return r.getOne(ctx, query, map[string]interface{}{"email": strings.ToLower(email)})
}

func (r *UserRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.User, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
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
	return parseUser(data), nil
}

// List returns users matching filter, oldest first
func (r *UserRepository) List(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.LastName != "" {
		conditions = append(conditions, "string::contains(string::lowercase(last_name), $last_name)")
		vars["last_name"] = strings.ToLower(filter.LastName)
	}
	if filter.City != "" {
		conditions = append(conditions, "string::contains(string::lowercase(city), $city)")
		vars["city"] = strings.ToLower(filter.City)
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = $status")
		vars["status"] = filter.Status
	}

	result, err := r.db.Query(ctx, "SELECT * FROM user"+where(conditions)+" ORDER BY created_on ASC", vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(result)
	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, parseUser(row))
	}
	return users, nil
}

// Update overwrites every mutable field of a user
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	vars := map[string]interface{}{"id": user.ID}
	query := `UPDATE user SET ` + setClause(userAssignments(user), vars) +
		`, updated_on = time::now() WHERE id = type::thing("user", $id)`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err, "email already exists")
	}

	rows := extractQueryResults(result)
	if len(rows) == 0 {
		return database.ErrNotFound
	}
	user.UpdatedAt = getTimeValue(rows[0], "updated_on")
	return nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:                recordKey(data["id"]),
		LastName:          getString(data, "last_name"),
		FirstName:         getString(data, "first_name"),
		Email:             getString(data, "email"),
		PasswordHash:      getStringPtr(data, "hash"),
		City:              getString(data, "city"),
		Phone:             getStringPtr(data, "phone"),
		PhotoURL:          getStringPtr(data, "photo_url"),
		Status:            model.UserStatus(getString(data, "status")),
		BoatLicenseNumber: getStringPtr(data, "boat_license_number"),
		InsuranceNumber:   getStringPtr(data, "insurance_number"),
		CompanyName:       getStringPtr(data, "company_name"),
		ActivityType:      getStringPtr(data, "activity_type"),
		BirthDate:         getStringPtr(data, "birth_date"),
		Address:           getStringPtr(data, "address"),
		PostalCode:        getStringPtr(data, "postal_code"),
		Languages:         getStringSlice(data, "languages"),
		AnonymizedAt:      getTime(data, "anonymized_on"),
		CreatedAt:         getTimeValue(data, "created_on"),
		UpdatedAt:         getTimeValue(data, "updated_on"),
	}
}

// where joins filter conditions into a WHERE clause
func where(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
