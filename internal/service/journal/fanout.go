package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// fanOut creates derived records from parsed data across the four record
// stores concurrently. Creation is best-effort: a failure in one category
// never blocks the others and never fails the pipeline, it only lowers the
// reported count. Every goroutine writes a distinct field of counts, so no
// mutex is needed.
func (s *Service) fanOut(ctx context.Context, entry *domain.JournalEntry, parsed *domain.ParsedData) domain.CreatedCounts {
	var counts domain.CreatedCounts
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		counts.Meals = s.createMeals(ctx, entry, parsed.Meals)
	}()

	go func() {
		defer wg.Done()
		counts.Medicines = s.createMedicines(ctx, entry, parsed.Medicines)
	}()

	go func() {
		defer wg.Done()
		counts.BodyStats = s.createBodyStats(ctx, entry, parsed.BodyStats)
	}()

	go func() {
		defer wg.Done()
		counts.Tests = s.createLabTests(ctx, entry, parsed.Tests)
	}()

	wg.Wait()
	return counts
}

func (s *Service) createMeals(ctx context.Context, entry *domain.JournalEntry, meals []domain.ParsedMeal) int {
	created := 0
	for _, pm := range meals {
		if len(pm.Items) == 0 {
			continue
		}
		meal := &domain.Meal{
			ID:             uuid.New(),
			UserID:         entry.UserID,
			JournalEntryID: &entry.ID,
			IsFromJournal:  true,
			Date:           entry.Date,
			MealTime:       pm.Time,
			Items:          pm.Items,
			Quantity:       pm.Quantity,
			Calories:       pm.Calories,
			CreatedAt:      time.Now().UTC(),
		}
		if _, err := s.meals.Create(ctx, meal); err != nil {
			s.log.Error("create meal from journal", "journal_id", entry.ID, "error", err)
			continue
		}
		created++
	}
	return created
}

func (s *Service) createMedicines(ctx context.Context, entry *domain.JournalEntry, medicines []domain.ParsedMedicine) int {
	created := 0
	for _, pm := range medicines {
		if pm.Name == "" {
			continue
		}
		med := &domain.Medicine{
			ID:             uuid.New(),
			UserID:         entry.UserID,
			JournalEntryID: &entry.ID,
			IsFromJournal:  true,
			Name:           pm.Name,
			TimeOfDay:      pm.Time,
			Dosage:         pm.Dosage,
			StartDate:      entry.Date,
			CreatedAt:      time.Now().UTC(),
		}
		if _, err := s.medicines.Create(ctx, med); err != nil {
			s.log.Error("create medicine from journal", "journal_id", entry.ID, "error", err)
			continue
		}
		created++
	}
	return created
}

func (s *Service) createBodyStats(ctx context.Context, entry *domain.JournalEntry, stats *domain.ParsedBodyStats) int {
	if stats == nil || !stats.HasAny() {
		return 0
	}
	bs := &domain.BodyStat{
		ID:                uuid.New(),
		UserID:            entry.UserID,
		JournalEntryID:    &entry.ID,
		IsFromJournal:     true,
		Date:              entry.Date,
		WeightKg:          stats.WeightKg,
		WaterIntakeLiters: stats.WaterIntakeLiters,
		SleepHours:        stats.SleepHours,
		StepsCount:        stats.StepsCount,
		CreatedAt:         time.Now().UTC(),
	}
	if _, err := s.bodyStats.Create(ctx, bs); err != nil {
		s.log.Error("create body stat from journal", "journal_id", entry.ID, "error", err)
		return 0
	}
	return 1
}

func (s *Service) createLabTests(ctx context.Context, entry *domain.JournalEntry, tests []domain.ParsedLabTest) int {
	created := 0
	for _, pt := range tests {
		if pt.Name == "" {
			continue
		}
		lt := &domain.LabTest{
			ID:             uuid.New(),
			UserID:         entry.UserID,
			JournalEntryID: &entry.ID,
			IsFromJournal:  true,
			Name:           pt.Name,
			Result:         pt.Result,
			Value:          pt.Value,
			Unit:           pt.Unit,
			ReferenceRange: pt.ReferenceRange,
			TestDate:       entry.Date,
			CreatedAt:      time.Now().UTC(),
		}
		if _, err := s.labTests.Create(ctx, lt); err != nil {
			s.log.Error("create lab test from journal", "journal_id", entry.ID, "error", err)
			continue
		}
		created++
	}
	return created
}
