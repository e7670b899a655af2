package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// GetEntry returns one journal entry, including its parsed data and any
// processing error. Reading status never mutates anything; polling is safe.
// Returns domain.ErrNotFound for unknown ids and entries owned by others.
func (s *Service) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	entry, err := s.journal.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns the user's journal entries, newest first.
func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.JournalEntry, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	entries, total, err := s.journal.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, total, nil
}
