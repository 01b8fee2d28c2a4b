package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/model"
)

// ErasureService irreversibly anonymizes a departing user. The row is kept so
// boats, trips, bookings and logbook entries referencing it stay valid.
type ErasureService struct {
	userRepo UserRepository
	now      func() time.Time
}

// NewErasureService creates an erasure service. A nil clock means time.Now.
func NewErasureService(userRepo UserRepository, now func() time.Time) *ErasureService {
	if now == nil {
		now = time.Now
	}
	return &ErasureService{userRepo: userRepo, now: now}
}

// Anonymize overwrites the personal fields of user and persists it
func (s *ErasureService) Anonymize(ctx context.Context, user *model.User) error {
	erasedAt := s.now().UTC()

	user.LastName = model.AnonymizedName
	user.FirstName = model.AnonymizedName
	user.Email = placeholderEmail(erasedAt)
	user.PasswordHash = nil
	user.Phone = nil
	user.PhotoURL = nil
	user.BoatLicenseNumber = nil
	user.InsuranceNumber = nil
	user.CompanyName = nil
	user.Address = nil
	user.PostalCode = nil
	user.BirthDate = nil
	user.AnonymizedAt = &erasedAt

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("anonymize user: %w", err)
	}
	return nil
}

// placeholderEmail embeds the erasure time plus a random suffix so two
// erasures in the same millisecond never collide on the unique email index.
func placeholderEmail(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("deleted_%d_%s@anonymized.com", at.UnixMilli(), suffix)
}
