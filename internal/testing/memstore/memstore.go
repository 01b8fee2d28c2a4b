// Package memstore provides mutex-guarded in-memory implementations of the
// service repository interfaces.
//
// Records are copied on the way in and on the way out, so a caller mutating a
// returned entity never changes stored state until it calls Update. This keeps
// service tests honest about what is actually persisted.
//
//	store := memstore.New()
//	users := service.NewUserService(service.UserServiceConfig{
//	    UserRepo: store.Users(),
//	    BoatRepo: store.Boats(),
//	})
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fisherfans/api/internal/database"
	"github.com/fisherfans/api/internal/model"
)

// Store holds every table behind one lock
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	users    map[string]*model.User
	boats    map[string]*model.Boat
	trips    map[string]*model.Trip
	bookings map[string]*model.Booking
	logbook  map[string]*model.LogbookEntry
}

// New creates an empty store
func New() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[string]*model.User),
		boats:    make(map[string]*model.Boat),
		trips:    make(map[string]*model.Trip),
		bookings: make(map[string]*model.Booking),
		logbook:  make(map[string]*model.LogbookEntry),
	}
}

// WithClock sets the clock used for createdAt/updatedAt stamps
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Users returns the user repository
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Boats returns the boat repository
func (s *Store) Boats() *BoatRepo { return &BoatRepo{s: s} }

// Trips returns the trip repository
func (s *Store) Trips() *TripRepo { return &TripRepo{s: s} }

// Bookings returns the booking repository
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

// Logbook returns the logbook repository
func (s *Store) Logbook() *LogbookRepo { return &LogbookRepo{s: s} }

// Ping satisfies the health check contract
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

func containsFold(value, fragment string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(fragment))
}

func byCreated[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).Before(created(items[j]))
	})
}

// ============================================================================
// Users
// ============================================================================

// UserRepo is an in-memory service.UserRepository
type UserRepo struct{ s *Store }

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Languages = append([]string(nil), u.Languages...)
	return &c
}

func (r *UserRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// Create stores a new user
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; ok || r.emailTaken(user.Email, "") {
		return database.ErrDuplicate
	}
	now := r.s.stamp()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// GetByID returns a user or nil
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u, ok := r.s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

// GetByEmail returns a user by case-insensitive email or nil
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// List returns users matching filter
func (r *UserRepo) List(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.User, 0)
	for _, u := range r.s.users {
		if filter.LastName != "" && !containsFold(u.LastName, filter.LastName) {
			continue
		}
		if filter.City != "" && !containsFold(u.City, filter.City) {
			continue
		}
		if filter.Status != "" && string(u.Status) != filter.Status {
			continue
		}
		out = append(out, cloneUser(u))
	}
	byCreated(out, func(u *model.User) time.Time { return u.CreatedAt })
	return out, nil
}

// Update replaces a stored user
func (r *UserRepo) Update(ctx context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return database.ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return database.ErrDuplicate
	}
	user.UpdatedAt = r.s.stamp()
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// ============================================================================
// Boats
// ============================================================================

// BoatRepo is an in-memory service.BoatRepository
type BoatRepo struct{ s *Store }

func cloneBoat(b *model.Boat) *model.Boat {
	c := *b
	c.Equipment = append([]string(nil), b.Equipment...)
	return &c
}

// Create stores a new boat
func (r *BoatRepo) Create(ctx context.Context, boat *model.Boat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.boats[boat.ID]; ok {
		return database.ErrDuplicate
	}
	now := r.s.stamp()
	boat.CreatedAt, boat.UpdatedAt = now, now
	r.s.boats[boat.ID] = cloneBoat(boat)
	return nil
}

// GetByID returns a boat or nil
func (r *BoatRepo) GetByID(ctx context.Context, id string) (*model.Boat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if b, ok := r.s.boats[id]; ok {
		return cloneBoat(b), nil
	}
	return nil, nil
}

// List returns boats matching filter, ignoring the bounding box
func (r *BoatRepo) List(ctx context.Context, filter model.BoatFilter) ([]*model.Boat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Boat, 0)
	for _, b := range r.s.boats {
		if filter.BoatType != "" && b.BoatType != filter.BoatType {
			continue
		}
		if filter.HomePort != "" && !containsFold(b.HomePort, filter.HomePort) {
			continue
		}
		if filter.MinCapacity != nil && b.MaxCapacity < *filter.MinCapacity {
			continue
		}
		if filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, cloneBoat(b))
	}
	byCreated(out, func(b *model.Boat) time.Time { return b.CreatedAt })
	return out, nil
}

// CountByOwner counts boats owned by ownerID
func (r *BoatRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, b := range r.s.boats {
		if b.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

// Update replaces a stored boat
func (r *BoatRepo) Update(ctx context.Context, boat *model.Boat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.boats[boat.ID]; !ok {
		return database.ErrNotFound
	}
	boat.UpdatedAt = r.s.stamp()
	r.s.boats[boat.ID] = cloneBoat(boat)
	return nil
}

// Delete removes a boat
func (r *BoatRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.boats, id)
	return nil
}

// ============================================================================
// Trips
// ============================================================================

// TripRepo is an in-memory service.TripRepository
type TripRepo struct{ s *Store }

func cloneTrip(t *model.Trip) *model.Trip {
	c := *t
	c.StartDates = append([]string(nil), t.StartDates...)
	c.EndDates = append([]string(nil), t.EndDates...)
	c.StartTimes = append([]string(nil), t.StartTimes...)
	c.EndTimes = append([]string(nil), t.EndTimes...)
	return &c
}

// Create stores a new trip
func (r *TripRepo) Create(ctx context.Context, trip *model.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[trip.ID]; ok {
		return database.ErrDuplicate
	}
	now := r.s.stamp()
	trip.CreatedAt, trip.UpdatedAt = now, now
	r.s.trips[trip.ID] = cloneTrip(trip)
	return nil
}

// GetByID returns a trip or nil
func (r *TripRepo) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if t, ok := r.s.trips[id]; ok {
		return cloneTrip(t), nil
	}
	return nil, nil
}

// List returns trips matching filter, ignoring StartDate
func (r *TripRepo) List(ctx context.Context, filter model.TripFilter) ([]*model.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Trip, 0)
	for _, t := range r.s.trips {
		if filter.TripType != "" && t.TripType != filter.TripType {
			continue
		}
		if filter.MinPrice != nil && t.Price.LessThan(filter.MinPrice.Decimal) {
			continue
		}
		if filter.MaxPrice != nil && t.Price.GreaterThan(filter.MaxPrice.Decimal) {
			continue
		}
		if filter.BoatID != "" && t.BoatID != filter.BoatID {
			continue
		}
		if filter.OrganizerID != "" && t.OrganizerID != filter.OrganizerID {
			continue
		}
		out = append(out, cloneTrip(t))
	}
	byCreated(out, func(t *model.Trip) time.Time { return t.CreatedAt })
	return out, nil
}

// CountByBoat counts trips on boatID
func (r *TripRepo) CountByBoat(ctx context.Context, boatID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, t := range r.s.trips {
		if t.BoatID == boatID {
			n++
		}
	}
	return n, nil
}

// Update replaces a stored trip
func (r *TripRepo) Update(ctx context.Context, trip *model.Trip) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[trip.ID]; !ok {
		return database.ErrNotFound
	}
	trip.UpdatedAt = r.s.stamp()
	r.s.trips[trip.ID] = cloneTrip(trip)
	return nil
}

// Delete removes a trip
func (r *TripRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.trips, id)
	return nil
}

// ============================================================================
// Bookings
// ============================================================================

// BookingRepo is an in-memory service.BookingRepository
type BookingRepo struct{ s *Store }

func cloneBooking(b *model.Booking) *model.Booking {
	c := *b
	return &c
}

// Create stores a new booking
func (r *BookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[booking.ID]; ok {
		return database.ErrDuplicate
	}
	now := r.s.stamp()
	booking.CreatedAt, booking.UpdatedAt = now, now
	r.s.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

// GetByID returns a booking or nil
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if b, ok := r.s.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, nil
}

// List returns bookings matching filter
func (r *BookingRepo) List(ctx context.Context, filter model.BookingFilter) ([]*model.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Booking, 0)
	for _, b := range r.s.bookings {
		if filter.TripID != "" && b.TripID != filter.TripID {
			continue
		}
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		out = append(out, cloneBooking(b))
	}
	byCreated(out, func(b *model.Booking) time.Time { return b.CreatedAt })
	return out, nil
}

// CountByTrip counts bookings on tripID
func (r *BookingRepo) CountByTrip(ctx context.Context, tripID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, b := range r.s.bookings {
		if b.TripID == tripID {
			n++
		}
	}
	return n, nil
}

// Update replaces a stored booking
func (r *BookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[booking.ID]; !ok {
		return database.ErrNotFound
	}
	booking.UpdatedAt = r.s.stamp()
	r.s.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

// Delete removes a booking
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.bookings, id)
	return nil
}

// ============================================================================
// Logbook
// ============================================================================

// LogbookRepo is an in-memory service.LogbookRepository
type LogbookRepo struct{ s *Store }

func cloneEntry(e *model.LogbookEntry) *model.LogbookEntry {
	c := *e
	return &c
}

// Create stores a new entry
func (r *LogbookRepo) Create(ctx context.Context, entry *model.LogbookEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.logbook[entry.ID]; ok {
		return database.ErrDuplicate
	}
	now := r.s.stamp()
	entry.CreatedAt, entry.UpdatedAt = now, now
	r.s.logbook[entry.ID] = cloneEntry(entry)
	return nil
}

// GetByID returns an entry or nil
func (r *LogbookRepo) GetByID(ctx context.Context, id string) (*model.LogbookEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if e, ok := r.s.logbook[id]; ok {
		return cloneEntry(e), nil
	}
	return nil, nil
}

// List returns entries matching filter. Date bounds are inclusive.
func (r *LogbookRepo) List(ctx context.Context, filter model.LogbookFilter) ([]*model.LogbookEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.LogbookEntry, 0)
	for _, e := range r.s.logbook {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.FishSpecies != "" && !containsFold(e.FishSpecies, filter.FishSpecies) {
			continue
		}
		if filter.StartDate != "" && e.FishingDate < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && e.FishingDate > filter.EndDate {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	byCreated(out, func(e *model.LogbookEntry) time.Time { return e.CreatedAt })
	return out, nil
}

// Update replaces a stored entry
func (r *LogbookRepo) Update(ctx context.Context, entry *model.LogbookEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.logbook[entry.ID]; !ok {
		return database.ErrNotFound
	}
	entry.UpdatedAt = r.s.stamp()
	r.s.logbook[entry.ID] = cloneEntry(entry)
	return nil
}

// Delete removes an entry
func (r *LogbookRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.logbook, id)
	return nil
}
