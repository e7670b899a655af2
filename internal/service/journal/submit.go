package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// Submit accepts raw journal text, persists the entry, and runs the parsing
// pipeline synchronously. The entry is created directly in the processing
// state: the caller holds the only reference until this returns, so the
// pending state would never be observable.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, input SubmitInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if input.Date != nil {
		date = input.Date.UTC()
	}

	entry := &domain.JournalEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Date:             date,
		RawText:          strings.TrimSpace(input.RawText),
		ProcessingStatus: domain.ProcessingStatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.journal.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create journal entry: %w", err)
	}

	s.log.Info("journal entry submitted", "journal_id", created.ID, "user_id", userID)

	return s.processEntry(ctx, created)
}
