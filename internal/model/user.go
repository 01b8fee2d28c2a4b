package model

import (
	"strings"
	"time"
)

// UserStatus distinguishes private individuals from professionals
type UserStatus string

const (
	UserStatusIndividual   UserStatus = "individual"
	UserStatusProfessional UserStatus = "professional"
)

// Activity types for professional accounts
const (
	ActivityRental       = "rental"
	ActivityFishingGuide = "fishing_guide"
)

// AnonymizedName replaces both name fields of an erased account.
const AnonymizedName = "ANONYME"

// User represents a registered account
type User struct {
	ID                string     `json:"id"`
	LastName          string     `json:"lastName"`
	FirstName         string     `json:"firstName"`
	Email             string     `json:"email"`
	PasswordHash      *string    `json:"-"` // Never expose password hash
	City              string     `json:"city"`
	Phone             *string    `json:"phone,omitempty"`
	PhotoURL          *string    `json:"photoUrl,omitempty"`
	Status            UserStatus `json:"status"`
	BoatLicenseNumber *string    `json:"boatLicenseNumber,omitempty"`
	InsuranceNumber   *string    `json:"insuranceNumber,omitempty"`
	CompanyName       *string    `json:"companyName,omitempty"`
	ActivityType      *string    `json:"activityType,omitempty"`
	BirthDate         *string    `json:"birthDate,omitempty"`
	Address           *string    `json:"address,omitempty"`
	PostalCode        *string    `json:"postalCode,omitempty"`
	Languages         []string   `json:"languages"`
	AnonymizedAt      *time.Time `json:"anonymizedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// HasBoatLicense reports whether the user holds a non-empty license credential
func (u *User) HasBoatLicense() bool {
	return u.BoatLicenseNumber != nil && strings.TrimSpace(*u.BoatLicenseNumber) != ""
}

// IsAnonymized returns true once the account has been erased
func (u *User) IsAnonymized() bool {
	return u.AnonymizedAt != nil
}

// CreateUserRequest is the registration payload
type CreateUserRequest struct {
	LastName          string   `json:"lastName"`
	FirstName         string   `json:"firstName"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	City              string   `json:"city"`
	Phone             *string  `json:"phone,omitempty"`
	PhotoURL          *string  `json:"photoUrl,omitempty"`
	Status            string   `json:"status"`
	BoatLicenseNumber *string  `json:"boatLicenseNumber,omitempty"`
	InsuranceNumber   *string  `json:"insuranceNumber,omitempty"`
	CompanyName       *string  `json:"companyName,omitempty"`
	ActivityType      *string  `json:"activityType,omitempty"`
	BirthDate         *string  `json:"birthDate,omitempty"`
	Address           *string  `json:"address,omitempty"`
	PostalCode        *string  `json:"postalCode,omitempty"`
	Languages         []string `json:"languages,omitempty"`
}

// Validate checks the registration payload
func (r *CreateUserRequest) Validate() []FieldError {
	var errors []FieldError

	errors = required(errors, "lastName", r.LastName)
	errors = required(errors, "firstName", r.FirstName)
	if !IsValidEmail(strings.TrimSpace(r.Email)) {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	errors = append(errors, validatePassword(r.Password)...)
	errors = required(errors, "city", r.City)
	errors = enumField(errors, "status", r.Status, string(UserStatusIndividual), string(UserStatusProfessional))
	errors = validateUserOptionals(errors, r.BoatLicenseNumber, r.InsuranceNumber, r.ActivityType, r.BirthDate, r.PostalCode)

	return errors
}

// UpdateUserRequest is a partial update of the caller's own profile
type UpdateUserRequest struct {
	LastName          *string  `json:"lastName,omitempty"`
	FirstName         *string  `json:"firstName,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Password          *string  `json:"password,omitempty"`
	City              *string  `json:"city,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	PhotoURL          *string  `json:"photoUrl,omitempty"`
	Status            *string  `json:"status,omitempty"`
	BoatLicenseNumber *string  `json:"boatLicenseNumber,omitempty"`
	InsuranceNumber   *string  `json:"insuranceNumber,omitempty"`
	CompanyName       *string  `json:"companyName,omitempty"`
	ActivityType      *string  `json:"activityType,omitempty"`
	BirthDate         *string  `json:"birthDate,omitempty"`
	Address           *string  `json:"address,omitempty"`
	PostalCode        *string  `json:"postalCode,omitempty"`
	Languages         []string `json:"languages,omitempty"`
}

// Validate checks the fields that are present
func (r *UpdateUserRequest) Validate() []FieldError {
	var errors []FieldError

	if r.LastName != nil {
		errors = required(errors, "lastName", *r.LastName)
	}
	if r.FirstName != nil {
		errors = required(errors, "firstName", *r.FirstName)
	}
	if r.Email != nil && !IsValidEmail(strings.TrimSpace(*r.Email)) {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Password != nil {
		errors = append(errors, validatePassword(*r.Password)...)
	}
	if r.City != nil {
		errors = required(errors, "city", *r.City)
	}
	errors = optionalEnum(errors, "status", r.Status, string(UserStatusIndividual), string(UserStatusProfessional))
	errors = validateUserOptionals(errors, r.BoatLicenseNumber, r.InsuranceNumber, r.ActivityType, r.BirthDate, r.PostalCode)

	return errors
}

// ApplyTo copies the present profile fields onto u. Email and password are
// left to the caller, which normalizes and hashes them.
func (r *UpdateUserRequest) ApplyTo(u *User) {
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.City != nil {
		u.City = *r.City
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.PhotoURL != nil {
		u.PhotoURL = r.PhotoURL
	}
	if r.Status != nil {
		u.Status = UserStatus(*r.Status)
	}
	if r.BoatLicenseNumber != nil {
		u.BoatLicenseNumber = r.BoatLicenseNumber
	}
	if r.InsuranceNumber != nil {
		u.InsuranceNumber = r.InsuranceNumber
	}
	if r.CompanyName != nil {
		u.CompanyName = r.CompanyName
	}
	if r.ActivityType != nil {
		u.ActivityType = r.ActivityType
	}
	if r.BirthDate != nil {
		if d, ok := NormalizeDate(*r.BirthDate); ok {
			u.BirthDate = &d
		}
	}
	if r.Address != nil {
		u.Address = r.Address
	}
	if r.PostalCode != nil {
		u.PostalCode = r.PostalCode
	}
	if r.Languages != nil {
		u.Languages = r.Languages
	}
}

// UserFilter narrows a user listing. Name and city match case-insensitively on substrings.
type UserFilter struct {
	LastName string
	City     string
	Status   string
}

func validatePassword(password string) []FieldError {
	switch {
	case password == "":
		return []FieldError{{Field: "password", Message: "password is required"}}
	case len(password) < MinPasswordLength:
		return []FieldError{{Field: "password", Message: "password must be at least 8 characters"}}
	case len(password) > MaxPasswordLength:
		return []FieldError{{Field: "password", Message: "password must be 72 characters or less"}}
	}
	return nil
}

func validateUserOptionals(errors []FieldError, license, insurance, activity, birthDate, postalCode *string) []FieldError {
	errors = optionalPattern(errors, "boatLicenseNumber", license, boatLicensePattern, "boat license must be 8 digits")
	errors = optionalPattern(errors, "insuranceNumber", insurance, insurancePattern, "insurance number must be 12 uppercase alphanumeric characters")
	errors = optionalEnum(errors, "activityType", activity, ActivityRental, ActivityFishingGuide)
	if birthDate != nil {
		errors = dateField(errors, "birthDate", *birthDate)
	}
	errors = optionalPattern(errors, "postalCode", postalCode, postalCodePattern, "postal code must be 5 digits")
	return errors
}
