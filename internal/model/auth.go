package model

import "strings"

// LoginRequest carries email/password credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login payload
func (r *LoginRequest) Validate() []FieldError {
	var errors []FieldError

	if !IsValidEmail(strings.TrimSpace(r.Email)) {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Password == "" {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	}

	return errors
}

// LoginResponse is returned by a successful login. RefreshToken repeats the
// access token; sessions are not rotated.
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int         `json:"expiresIn"`
	User         SessionUser `json:"user"`
}

// SessionUser is the identity summary embedded in a login response
type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
