// Package journal provides the AI journal parsing pipeline: it accepts raw
// health journal text, runs it through the extraction service, decodes the
// structured output, fans derived records out into the four record stores,
// and owns every processing-status transition on the entry.
package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

const (
	// MaxRawTextLen bounds the accepted journal text length.
	MaxRawTextLen = 5000

	DefaultLimit = 50
	MaxLimit     = 200
)

type journalRepo interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error)
	MarkCompleted(ctx context.Context, entryID uuid.UUID, parsedData *domain.ParsedData, aiResponse string) error
	MarkFailed(ctx context.Context, entryID uuid.UUID, reason string, aiResponse *string) error
	MarkPending(ctx context.Context, entryID uuid.UUID) error
	MarkProcessing(ctx context.Context, entryID uuid.UUID) error
}

type mealWriter interface {
	Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
}

type medicineWriter interface {
	Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error)
}

type bodyStatWriter interface {
	Create(ctx context.Context, b *domain.BodyStat) (*domain.BodyStat, error)
}

type labTestWriter interface {
	Create(ctx context.Context, lt *domain.LabTest) (*domain.LabTest, error)
}

type extractor interface {
	Extract(ctx context.Context, rawText string) (string, error)
}

// Service wires the extraction client, the journal entry store, and the four
// derived-record stores into one pipeline.
type Service struct {
	log       *slog.Logger
	journal   journalRepo
	meals     mealWriter
	medicines medicineWriter
	bodyStats bodyStatWriter
	labTests  labTestWriter
	extractor extractor
}

// NewService creates a new journal service.
func NewService(
	log *slog.Logger,
	journal journalRepo,
	meals mealWriter,
	medicines medicineWriter,
	bodyStats bodyStatWriter,
	labTests labTestWriter,
	extractor extractor,
) *Service {
	return &Service{
		log:       log.With("service", "journal"),
		journal:   journal,
		meals:     meals,
		medicines: medicines,
		bodyStats: bodyStats,
		labTests:  labTests,
		extractor: extractor,
	}
}

// Result is the outcome of a Submit or Retry operation. The journal id is
// always present, including on pipeline failure, so the caller can poll
// status or retry.
type Result struct {
	JournalID       uuid.UUID
	Status          domain.ProcessingStatus
	IsProcessed     bool
	ParsedData      *domain.ParsedData
	CreatedItems    domain.CreatedCounts
	ProcessingError *string
}
