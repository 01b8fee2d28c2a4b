package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fisherfans/api/internal/model"
)

// LogbookService handles a user's private catch log
type LogbookService struct {
	logbookRepo LogbookRepository
}

// NewLogbookService creates a new logbook service
func NewLogbookService(logbookRepo LogbookRepository) *LogbookService {
	return &LogbookService{logbookRepo: logbookRepo}
}

// Create records a catch for the actor
func (s *LogbookService) Create(ctx context.Context, actorID string, req model.CreateLogbookEntryRequest) (*model.LogbookEntry, error) {
	fishingDate, _ := model.NormalizeDate(req.FishingDate)
	entry := &model.LogbookEntry{
		ID:          uuid.NewString(),
		UserID:      actorID,
		FishSpecies: req.FishSpecies,
		PhotoURL:    req.PhotoURL,
		Comment:     req.Comment,
		Length:      req.Length,
		Weight:      req.Weight,
		Location:    req.Location,
		FishingDate: fishingDate,
		Released:    req.Released != nil && *req.Released,
	}

	if err := s.logbookRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Get returns an entry visible only to its owner
func (s *LogbookService) Get(ctx context.Context, actorID, id string) (*model.LogbookEntry, error) {
	entry, err := s.logbookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrLogbookEntryNotFound
	}
	if err := authorize(actorID, entry.UserID, "you can only access your own logbook entries"); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the actor's entries matching filter
func (s *LogbookService) List(ctx context.Context, actorID string, filter model.LogbookFilter) ([]*model.LogbookEntry, error) {
	filter.UserID = actorID
	return s.logbookRepo.List(ctx, filter)
}

// Update applies a partial update; only the owner may do so
func (s *LogbookService) Update(ctx context.Context, actorID, id string, req model.UpdateLogbookEntryRequest) (*model.LogbookEntry, error) {
	entry, err := s.Get(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(entry)
	if err := s.logbookRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry; only the owner may do so
func (s *LogbookService) Delete(ctx context.Context, actorID, id string) error {
	entry, err := s.Get(ctx, actorID, id)
	if err != nil {
		return err
	}
	return s.logbookRepo.Delete(ctx, entry.ID)
}
