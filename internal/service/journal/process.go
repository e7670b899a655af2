package journal

import (
	"context"
	"fmt"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// processEntry runs the pipeline for one entry already in the processing
// state: extract, decode, fan out, mark completed. A pipeline failure is a
// normal outcome, not an error: the entry is marked failed and the returned
// Result carries the reason. The error return is reserved for infrastructure
// problems (the status update itself failing).
//
// Both Submit and Retry end up here, so the two paths cannot drift apart.
func (s *Service) processEntry(ctx context.Context, entry *domain.JournalEntry) (*Result, error) {
	raw, err := s.extractor.Extract(ctx, entry.RawText)
	if err != nil {
		s.log.Warn("extraction failed", "journal_id", entry.ID, "error", err)
		return s.fail(ctx, entry, fmt.Sprintf("extraction service: %v", err), nil)
	}

	parsed, err := decodeParsedData(raw)
	if err != nil {
		s.log.Warn("decode failed", "journal_id", entry.ID, "error", err)
		return s.fail(ctx, entry, fmt.Sprintf("decode extraction output: %v", err), &raw)
	}

	counts := s.fanOut(ctx, entry, parsed)

	if err := s.journal.MarkCompleted(ctx, entry.ID, parsed, raw); err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}

	s.log.Info("journal entry processed",
		"journal_id", entry.ID,
		"created_items", counts.Total(),
	)

	return &Result{
		JournalID:    entry.ID,
		Status:       domain.ProcessingStatusCompleted,
		IsProcessed:  true,
		ParsedData:   parsed,
		CreatedItems: counts,
	}, nil
}

// fail records the failure reason on the entry and returns a failed Result.
// The raw model output is stored when it exists so a decode failure can be
// inspected later.
func (s *Service) fail(ctx context.Context, entry *domain.JournalEntry, reason string, aiResponse *string) (*Result, error) {
	if err := s.journal.MarkFailed(ctx, entry.ID, reason, aiResponse); err != nil {
		return nil, fmt.Errorf("mark failed: %w", err)
	}

	return &Result{
		JournalID:       entry.ID,
		Status:          domain.ProcessingStatusFailed,
		ProcessingError: &reason,
	}, nil
}
