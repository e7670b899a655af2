package domain

import (
	"time"

	"github.com/google/uuid"
)

// Records derived from journal entries keep a back-reference to the source
// entry plus an IsFromJournal flag. Deleting a journal entry never cascades
// to its derived records; they stand on their own once created.

// Meal is a food-intake record.
type Meal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JournalEntryID *uuid.UUID
	IsFromJournal  bool
	Date           time.Time
	MealTime       string
	Items          []string
	Quantity       *string
	Calories       *int
	Notes          *string
	CreatedAt      time.Time
}

// Medicine is a medication-intake record.
type Medicine struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JournalEntryID *uuid.UUID
	IsFromJournal  bool
	Name           string
	TimeOfDay      string
	Dosage         *string
	StartDate      time.Time
	CreatedAt      time.Time
}

// BodyStat is a daily body-measurement record.
type BodyStat struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	JournalEntryID    *uuid.UUID
	IsFromJournal     bool
	Date              time.Time
	WeightKg          *float64
	WaterIntakeLiters *float64
	SleepHours        *float64
	StepsCount        *int
	CreatedAt         time.Time
}

// LabTest is a medical test-result record.
type LabTest struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	JournalEntryID *uuid.UUID
	IsFromJournal  bool
	Name           string
	Result         *string
	Value          *float64
	Unit           *string
	ReferenceRange *ReferenceRange
	TestDate       time.Time
	CreatedAt      time.Time
}

// ReferenceRange is the normal range for a lab-test value.
type ReferenceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}
