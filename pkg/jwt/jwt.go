package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKey       = errors.New("invalid key")
)

// signingMethod is the only algorithm accepted on validation.
var signingMethod = gojwt.SigningMethodHS256

// Claims binds a session to a user id (sub) and email.
type Claims struct {
	Email string `json:"email"`
	gojwt.RegisteredClaims
}

// Service signs and validates session tokens with a process-wide HMAC secret
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

// Config holds JWT service configuration
type Config struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewService creates a new JWT service
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret is empty", ErrInvalidKey)
	}
	if cfg.Expiration <= 0 {
		return nil, fmt.Errorf("%w: expiration must be positive", ErrInvalidKey)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: cfg.Expiration,
		now:        now,
	}, nil
}

// Sign issues a token for subject. Every call yields a distinct token.
func (s *Service) Sign(subject, email string) (string, *Claims, error) {
	return s.SignWithTTL(subject, email, s.expiration)
}

// SignWithTTL issues a token with an explicit lifetime
func (s *Service) SignWithTTL(subject, email string, ttl time.Duration) (string, *Claims, error) {
	if subject == "" {
		return "", nil, fmt.Errorf("%w: subject is required", ErrInvalidToken)
	}

	issuedAt := s.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := gojwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Validate verifies the signature and time bounds of a token and returns its claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{signingMethod.Alg()}),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(t *gojwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, gojwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetExpiration returns the lifetime of issued tokens
func (s *Service) GetExpiration() time.Duration {
	return s.expiration
}

// NewTestService creates a service with a fixed secret and clock for tests
func NewTestService(secret string, expiration time.Duration, now func() time.Time) *Service {
	return &Service{
		secret:     []byte(secret),
		issuer:     "test-issuer",
		expiration: expiration,
		now:        now,
	}
}
