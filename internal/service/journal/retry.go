package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// Retry reprocesses a failed entry from its original raw text. Only failed
// entries are retryable: anything else returns domain.ErrInvalidState, and
// unknown or foreign entries return domain.ErrNotFound. A retry may create
// duplicate derived records when the earlier attempt partially fanned out;
// that is accepted, record creation is not transactional with the pipeline.
func (s *Service) Retry(ctx context.Context, userID, entryID uuid.UUID) (*Result, error) {
	entry, err := s.journal.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	if !entry.ProcessingStatus.CanRetry() {
		return nil, fmt.Errorf("journal_entry %s: status %s is not retryable: %w",
			entryID, entry.ProcessingStatus, domain.ErrInvalidState)
	}

	// Walk the legal edges: failed -> pending -> processing. The guarded
	// updates also fence off concurrent retries of the same entry.
	if err := s.journal.MarkPending(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("reset journal entry: %w", err)
	}
	if err := s.journal.MarkProcessing(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("start reprocessing: %w", err)
	}

	s.log.Info("journal entry retry", "journal_id", entry.ID, "user_id", userID)

	return s.processEntry(ctx, entry)
}
