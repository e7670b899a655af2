// Package records provides read access to the derived health records:
// meals, medicines, body stats, and lab tests. Records enter the system
// through the journal pipeline; this service only lists them.
package records

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type mealRepo interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Meal, int, error)
	ListByJournalEntry(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error)
}

type medicineRepo interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Medicine, int, error)
}

type bodyStatRepo interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.BodyStat, int, error)
}

type labTestRepo interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LabTest, int, error)
}

// Service lists derived health records.
type Service struct {
	log       *slog.Logger
	meals     mealRepo
	medicines medicineRepo
	bodyStats bodyStatRepo
	labTests  labTestRepo
}

// NewService creates a new records service.
func NewService(log *slog.Logger, meals mealRepo, medicines medicineRepo, bodyStats bodyStatRepo, labTests labTestRepo) *Service {
	return &Service{
		log:       log.With("service", "records"),
		meals:     meals,
		medicines: medicines,
		bodyStats: bodyStats,
		labTests:  labTests,
	}
}

// ListInput holds pagination parameters for record listings.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limitOrDefault() int {
	if i.Limit == 0 {
		return DefaultLimit
	}
	return i.Limit
}

// ListMeals returns the user's meals, newest first.
func (s *Service) ListMeals(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.Meal, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	meals, total, err := s.meals.List(ctx, userID, input.limitOrDefault(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list meals: %w", err)
	}
	return meals, total, nil
}

// ListMealsByJournalEntry returns the meals derived from one journal entry.
func (s *Service) ListMealsByJournalEntry(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error) {
	meals, err := s.meals.ListByJournalEntry(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("list meals by journal entry: %w", err)
	}
	return meals, nil
}

// ListMedicines returns the user's medicines, newest first.
func (s *Service) ListMedicines(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.Medicine, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	medicines, total, err := s.medicines.List(ctx, userID, input.limitOrDefault(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list medicines: %w", err)
	}
	return medicines, total, nil
}

// ListBodyStats returns the user's body stats, newest first.
func (s *Service) ListBodyStats(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.BodyStat, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	stats, total, err := s.bodyStats.List(ctx, userID, input.limitOrDefault(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list body stats: %w", err)
	}
	return stats, total, nil
}

// ListLabTests returns the user's lab tests, newest first.
func (s *Service) ListLabTests(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.LabTest, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	tests, total, err := s.labTests.List(ctx, userID, input.limitOrDefault(), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list lab tests: %w", err)
	}
	return tests, total, nil
}
