package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

const userColumns = `id::text, last_name, first_name, email, password_hash, city, phone, photo_url,
	status, boat_license_number, insurance_number, company_name, activity_type, birth_date,
	address, postal_code, languages, anonymized_at, created_at, updated_at`

// UserRepo is the Postgres implementation of service.UserRepository.
type UserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo. Pass *pgxpool.Pool in production and a
// pgx.Tx in tests.
func NewUserRepo(db db) *UserRepo {
	return &UserRepo{db: db}
}

func userArgs(u *model.User) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                  u.ID,
		"last_name":           u.LastName,
		"first_name":          u.FirstName,
		"email":               u.Email,
		"password_hash":       u.PasswordHash,
		"city":                u.City,
		"phone":               u.Phone,
		"photo_url":           u.PhotoURL,
		"status":              string(u.Status),
		"boat_license_number": u.BoatLicenseNumber,
		"insurance_number":    u.InsuranceNumber,
		"company_name":        u.CompanyName,
		"activity_type":       u.ActivityType,
		"birth_date":          u.BirthDate,
		"address":             u.Address,
		"postal_code":         u.PostalCode,
		"languages":           orEmpty(u.Languages),
		"anonymized_at":       u.AnonymizedAt,
	}
}

// Create inserts a user and fills in its timestamps.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users (id, last_name, first_name, email, password_hash, city, phone, photo_url,
			status, boat_license_number, insurance_number, company_name, activity_type, birth_date,
			address, postal_code, languages, anonymized_at)
		VALUES (@id, @last_name, @first_name, @email, @password_hash, @city, @phone, @photo_url,
			@status, @boat_license_number, @insurance_number, @company_name, @activity_type, @birth_date,
			@address, @postal_code, @languages, @anonymized_at)
		RETURNING created_at, updated_at`

	if err := r.db.QueryRow(ctx, q, userArgs(u)).Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapWriteError("postgres.UserRepo.Create", err)
	}
	return nil
}

// GetByID retrieves a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if !validID(id) {
		return nil, nil
	}
	q := `SELECT ` + userColumns + ` FROM users WHERE id = @id`
	return r.getOne(ctx, "postgres.UserRepo.GetByID", q, pgx.NamedArgs{"id": id})
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower(@email)`
	return r.getOne(ctx, "postgres.UserRepo.GetByEmail", q, pgx.NamedArgs{"email": email})
}

func (r *UserRepo) getOne(ctx context.Context, op, q string, args pgx.NamedArgs) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// List returns users matching filter, oldest first.
func (r *UserRepo) List(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	var conditions []string
	args := pgx.NamedArgs{}

	if filter.LastName != "" {
		conditions = append(conditions, "last_name ILIKE @last_name")
		args["last_name"] = "%" + likeEscape(filter.LastName) + "%"
	}
	if filter.City != "" {
		conditions = append(conditions, "city ILIKE @city")
		args["city"] = "%" + likeEscape(filter.City) + "%"
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = @status")
		args["status"] = filter.Status
	}

	q := `SELECT ` + userColumns + ` FROM users` + where(conditions) + ` ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("postgres.UserRepo.List: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.UserRepo.List: rows: %w", err)
	}
	return users, nil
}

// Update overwrites every mutable field of a user.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	const q = `
		UPDATE users
		SET last_name           = @last_name,
		    first_name          = @first_name,
		    email               = @email,
		    password_hash       = @password_hash,
		    city                = @city,
		    phone               = @phone,
		    photo_url           = @photo_url,
		    status              = @status,
		    boat_license_number = @boat_license_number,
		    insurance_number    = @insurance_number,
		    company_name        = @company_name,
		    activity_type       = @activity_type,
		    birth_date          = @birth_date,
		    address             = @address,
		    postal_code         = @postal_code,
		    languages           = @languages,
		    anonymized_at       = @anonymized_at,
		    updated_at          = now()
		WHERE id = @id
		RETURNING updated_at`

	if !validID(u.ID) {
		return fmt.Errorf("postgres.UserRepo.Update: %w", database.ErrNotFound)
	}
	if err := r.db.QueryRow(ctx, q, userArgs(u)).Scan(&u.UpdatedAt); err != nil {
		if notFound(err) {
			return fmt.Errorf("postgres.UserRepo.Update: %w", database.ErrNotFound)
		}
		return mapWriteError("postgres.UserRepo.Update", err)
	}
	return nil
}

func scanUser(s scanner) (*model.User, error) {
	var (
		u      model.User
		status string
	)
	err := s.Scan(&u.ID, &u.LastName, &u.FirstName, &u.Email, &u.PasswordHash, &u.City, &u.Phone,
		&u.PhotoURL, &status, &u.BoatLicenseNumber, &u.InsuranceNumber, &u.CompanyName,
		&u.ActivityType, &u.BirthDate, &u.Address, &u.PostalCode, &u.Languages, &u.AnonymizedAt,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Status = model.UserStatus(status)
	if u.Languages == nil {
		u.Languages = []string{}
	}
	return &u, nil
}

// likeEscape escapes ILIKE wildcards so filters match literally.
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
