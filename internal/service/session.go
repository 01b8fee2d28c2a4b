package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fisherfans/api/internal/model"
	"github.com/fisherfans/api/pkg/jwt"
)

// Session is a signed bearer token bound to one user
type Session struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn int // seconds
}

// SessionIssuer turns a verified identity into a session token
type SessionIssuer struct {
	tokens *jwt.Service
}

// NewSessionIssuer creates a session issuer
func NewSessionIssuer(tokens *jwt.Service) *SessionIssuer {
	return &SessionIssuer{tokens: tokens}
}

// Issue signs a session for user. Nothing is persisted.
func (i *SessionIssuer) Issue(user *model.User) (*Session, error) {
	token, claims, err := i.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		ExpiresIn: int(i.tokens.GetExpiration().Seconds()),
	}, nil
}

// SessionResolver turns an inbound token back into the user it was issued for
type SessionResolver struct {
	tokens   *jwt.Service
	userRepo UserRepository
}

// NewSessionResolver creates a session resolver
func NewSessionResolver(tokens *jwt.Service, userRepo UserRepository) *SessionResolver {
	return &SessionResolver{tokens: tokens, userRepo: userRepo}
}

// Resolve validates token and loads its subject. Anonymized users still resolve.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims, err := r.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	user, err := r.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownSubject
	}
	return user, nil
}
