package service

import (
	"context"
	"strings"

	"github.com/fisherfans/api/internal/model"
)

// AuthService handles credential verification and session issuance
type AuthService struct {
	userRepo UserRepository
	hasher   PasswordHasher
	issuer   *SessionIssuer
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Hasher   PasswordHasher
	Issuer   *SessionIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		hasher:   cfg.Hasher,
		issuer:   cfg.Issuer,
	}
}

// LoginResult represents a successful login
type LoginResult struct {
	User    *model.User
	Session *Session
}

// Login verifies email/password and issues a session. Unknown email and
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, *user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	session, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Session: session}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
