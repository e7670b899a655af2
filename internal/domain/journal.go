package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a raw health-journal submission and the state of its AI
// parsing pipeline. RawText is immutable after creation; reprocessing a
// failed entry always re-reads the original text.
type JournalEntry struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	RawText          string
	ProcessingStatus ProcessingStatus
	IsProcessed      bool
	ParsedData       *ParsedData
	// ProcessingError holds the failure reason. Set iff the entry is failed.
	ProcessingError *string
	// AIResponse keeps the raw extraction output for diagnostics, including
	// output that failed to decode.
	AIResponse *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ParsedData is the structured result extracted from one journal entry.
// The json tags define the extraction output schema.
type ParsedData struct {
	Meals     []ParsedMeal     `json:"meals,omitempty"`
	Medicines []ParsedMedicine `json:"medicines,omitempty"`
	BodyStats *ParsedBodyStats `json:"bodyStats,omitempty"`
	Tests     []ParsedLabTest  `json:"tests,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

// IsEmpty reports whether no structured data was extracted at all.
// An empty result is still a successful parse.
func (d *ParsedData) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Meals) == 0 &&
		len(d.Medicines) == 0 &&
		!d.BodyStats.HasAny() &&
		len(d.Tests) == 0 &&
		(d.Notes == nil || *d.Notes == "")
}

// ParsedMeal is one meal block extracted from journal text.
type ParsedMeal struct {
	Time     string   `json:"time"`
	Items    []string `json:"items"`
	Quantity *string  `json:"quantity,omitempty"`
	Calories *int     `json:"calories,omitempty"`
}

// ParsedMedicine is one medicine intake extracted from journal text.
type ParsedMedicine struct {
	Name   string  `json:"name"`
	Time   string  `json:"time"`
	Dosage *string `json:"dosage,omitempty"`
}

// ParsedBodyStats holds the body measurements extracted from journal text.
// All fields are optional; a day's entry rarely mentions more than a couple.
type ParsedBodyStats struct {
	WeightKg          *float64 `json:"weightKg,omitempty"`
	WaterIntakeLiters *float64 `json:"waterIntakeLiters,omitempty"`
	SleepHours        *float64 `json:"sleepHours,omitempty"`
	StepsCount        *int     `json:"stepsCount,omitempty"`
}

// HasAny reports whether at least one measurement is present.
func (b *ParsedBodyStats) HasAny() bool {
	if b == nil {
		return false
	}
	return b.WeightKg != nil || b.WaterIntakeLiters != nil ||
		b.SleepHours != nil || b.StepsCount != nil
}

// ParsedLabTest is one lab result extracted from journal text.
type ParsedLabTest struct {
	Name           string          `json:"name"`
	Result         *string         `json:"result,omitempty"`
	Value          *float64        `json:"value,omitempty"`
	Unit           *string         `json:"unit,omitempty"`
	ReferenceRange *ReferenceRange `json:"referenceRange,omitempty"`
}

// CreatedCounts reports how many derived records each category produced
// during fan-out. A count lower than the parsed data suggests a partial
// write failure; the pipeline still completes.
type CreatedCounts struct {
	Meals     int `json:"meals"`
	Medicines int `json:"medicines"`
	BodyStats int `json:"bodyStats"`
	Tests     int `json:"tests"`
}

// Total returns the number of derived records created across all categories.
func (c CreatedCounts) Total() int {
	return c.Meals + c.Medicines + c.BodyStats + c.Tests
}
