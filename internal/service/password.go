package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost factor
const bcryptCost = 10

// PasswordHasher hashes and verifies secrets
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// BcryptHasher implements PasswordHasher with salted bcrypt digests
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default cost
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// NewBcryptHasherWithCost is used by tests to keep hashing fast
func NewBcryptHasherWithCost(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted digest; two calls on the same secret differ.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify compares in constant time and returns false for a malformed digest.
func (h *BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
