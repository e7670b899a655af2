package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with generated credentials.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$placeholderhashplaceholderhashplaceholde",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedJournalEntry creates a journal entry in the given processing status.
// Returns a filled domain.JournalEntry.
func SeedJournalEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.ProcessingStatus) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.JournalEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Date:             now,
		RawText:          "seeded journal text " + uniqueSuffix(),
		ProcessingStatus: status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var processingError *string
	if status == domain.ProcessingStatusFailed {
		reason := "seeded failure"
		processingError = &reason
		entry.ProcessingError = processingError
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, date, raw_text, processing_status, is_processed, processing_error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.UserID, entry.Date, entry.RawText, entry.ProcessingStatus.String(),
		status == domain.ProcessingStatusCompleted, processingError, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedJournalEntry insert: %v", err)
	}

	return entry
}
