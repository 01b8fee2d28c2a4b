package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/api/internal/model"
)

// ============================================================================
// Registration
// ============================================================================

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.register(t, "  Alice@Example.COM ", nil)

	assert.Equal(t, "alice@example.com", user.Email)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "correct-horse", *user.PasswordHash)
	assert.True(t, env.hasher.Verify("correct-horse", *user.PasswordHash))
	assert.NotNil(t, user.Languages)
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "alice@example.com", nil)

	_, err := env.users.Register(context.Background(), model.CreateUserRequest{
		LastName: "Other", FirstName: "Alice", Email: "ALICE@example.com",
		Password: "something-else", City: "Nice", Status: "individual",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

// ============================================================================
// Self-service Update
// ============================================================================

func TestUserUpdate_Self_AppliesFieldsAndRehashes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "alice@example.com", nil)

	updated, err := env.users.Update(ctx, user.ID, user.ID, model.UpdateUserRequest{
		City:     strPtr("Marseille"),
		Password: strPtr("new-password"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Marseille", updated.City)

	_, err = env.auth.Login(ctx, "alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = env.auth.Login(ctx, "alice@example.com", "new-password")
	assert.NoError(t, err)
}

func TestUserUpdate_OtherUser_Forbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)

	_, err := env.users.Update(context.Background(), alice.ID, bob.ID, model.UpdateUserRequest{
		City: strPtr("Marseille"),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := env.users.Get(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Antibes", stored.City)
}

func TestUserUpdate_Missing_NotFoundBeforeForbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", nil)

	_, err := env.users.Update(context.Background(), alice.ID, "missing", model.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdate_EmailTaken_Conflict(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", nil)
	env.register(t, "bob@example.com", nil)

	_, err := env.users.Update(context.Background(), alice.ID, alice.ID, model.UpdateUserRequest{
		Email: strPtr("Bob@example.com"),
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

// ============================================================================
// Erasure
// ============================================================================

var placeholderPattern = regexp.MustCompile(`^deleted_\d+_[0-9a-f]{8}@anonymized\.com$`)

func TestUserDelete_OtherUser_ForbiddenAndUnchanged(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)

	err := env.users.Delete(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	stored, err := env.users.Get(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", stored.Email)
	assert.False(t, stored.IsAnonymized())
}

func TestUserDelete_Self_AnonymizesAndKeepsReferences(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	skipper := env.skipper(t, "skipper@example.com")
	boat := env.boat(t, skipper, nil, nil)
	trip := env.trip(t, skipper, boat, "80")

	require.NoError(t, env.users.Delete(ctx, skipper.ID, skipper.ID))

	stored, err := env.users.Get(ctx, skipper.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AnonymizedName, stored.LastName)
	assert.Equal(t, model.AnonymizedName, stored.FirstName)
	assert.Regexp(t, placeholderPattern, stored.Email)
	assert.Nil(t, stored.PasswordHash)
	assert.Nil(t, stored.Phone)
	assert.Nil(t, stored.BoatLicenseNumber)
	assert.Nil(t, stored.InsuranceNumber)
	assert.Nil(t, stored.Address)
	assert.Nil(t, stored.PostalCode)
	assert.Nil(t, stored.BirthDate)
	require.NotNil(t, stored.AnonymizedAt)
	assert.True(t, stored.AnonymizedAt.Equal(testNow))

	gotBoat, err := env.boats.Get(ctx, boat.ID)
	require.NoError(t, err)
	assert.Equal(t, skipper.ID, gotBoat.OwnerID)

	gotTrip, err := env.trips.Get(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, skipper.ID, gotTrip.OrganizerID)
}

func TestUserDelete_TwoErasures_DistinctPlaceholders(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)

	require.NoError(t, env.users.Delete(ctx, alice.ID, alice.ID))
	require.NoError(t, env.users.Delete(ctx, bob.ID, bob.ID))

	a, err := env.users.Get(ctx, alice.ID)
	require.NoError(t, err)
	b, err := env.users.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.Email, b.Email)
}

// ============================================================================
// Owned Resource Listings
// ============================================================================

func TestUserListBookings_OtherUser_Forbidden(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", nil)
	bob := env.register(t, "bob@example.com", nil)

	_, err := env.users.ListBookings(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.users.ListLogbook(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserListBoats_UnknownUser_NotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.users.ListBoats(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserListBoats_ReturnsOwnedOnly(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	alice := env.skipper(t, "alice@example.com")
	bob := env.skipper(t, "bob@example.com")
	own := env.boat(t, alice, nil, nil)
	env.boat(t, bob, nil, nil)

	boats, err := env.users.ListBoats(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, boats, 1)
	assert.Equal(t, own.ID, boats[0].ID)
}
