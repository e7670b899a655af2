// Package journal implements the JournalEntry repository using PostgreSQL.
// It owns persistence of the entry's processing lifecycle: every status
// mutation is guarded by a WHERE clause on the current status, so an illegal
// transition affects zero rows instead of corrupting state.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres"
	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "journal_entries"

var columns = []string{
	"id", "user_id", "date", "raw_text", "processing_status", "is_processed",
	"parsed_data", "processing_error", "ai_response", "created_at", "updated_at",
}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a journal entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	entry, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entryID)
	}
	return entry, nil
}

// List returns journal entries for a user ordered by date DESC with pagination.
// Returns entries, total count, and error.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count journal_entries: %w", err)
	}

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list journal_entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan journal_entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate journal_entries: %w", err)
	}

	return entries, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new journal entry and returns the persisted entity.
func (r *Repo) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	parsed, err := marshalParsedData(entry.ParsedData)
	if err != nil {
		return nil, fmt.Errorf("marshal parsed_data: %w", err)
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			entry.ID, entry.UserID, entry.Date, entry.RawText,
			entry.ProcessingStatus.String(), entry.IsProcessed,
			parsed, entry.ProcessingError, entry.AIResponse,
			entry.CreatedAt, entry.UpdatedAt,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", entry.ID)
	}
	return created, nil
}

// MarkCompleted transitions processing → completed, persisting parsedData and
// aiResponse atomically with the status flip and setting is_processed.
// Returns domain.ErrInvalidState if the entry is not currently processing.
func (r *Repo) MarkCompleted(ctx context.Context, entryID uuid.UUID, parsedData *domain.ParsedData, aiResponse string) error {
	parsed, err := marshalParsedData(parsedData)
	if err != nil {
		return fmt.Errorf("marshal parsed_data: %w", err)
	}

	return r.transition(ctx, entryID, domain.ProcessingStatusProcessing, map[string]any{
		"processing_status": domain.ProcessingStatusCompleted.String(),
		"is_processed":      true,
		"parsed_data":       parsed,
		"ai_response":       aiResponse,
		"processing_error":  nil,
	})
}

// MarkFailed transitions processing → failed, recording the failure reason
// and, when available, the raw extraction-service response.
// Returns domain.ErrInvalidState if the entry is not currently processing.
func (r *Repo) MarkFailed(ctx context.Context, entryID uuid.UUID, reason string, aiResponse *string) error {
	sets := map[string]any{
		"processing_status": domain.ProcessingStatusFailed.String(),
		"processing_error":  reason,
	}
	if aiResponse != nil {
		sets["ai_response"] = *aiResponse
	}
	return r.transition(ctx, entryID, domain.ProcessingStatusProcessing, sets)
}

// MarkPending transitions failed → pending for a retry, clearing the stored
// processing error. Returns domain.ErrInvalidState if the entry is not failed.
func (r *Repo) MarkPending(ctx context.Context, entryID uuid.UUID) error {
	return r.transition(ctx, entryID, domain.ProcessingStatusFailed, map[string]any{
		"processing_status": domain.ProcessingStatusPending.String(),
		"processing_error":  nil,
	})
}

// MarkProcessing transitions pending → processing.
// Returns domain.ErrInvalidState if the entry is not pending.
func (r *Repo) MarkProcessing(ctx context.Context, entryID uuid.UUID) error {
	return r.transition(ctx, entryID, domain.ProcessingStatusPending, map[string]any{
		"processing_status": domain.ProcessingStatusProcessing.String(),
	})
}

// transition applies a guarded status update: the row is only touched when it
// is currently in the expected state, which makes each state-machine edge a
// single atomic compare-and-set.
func (r *Repo) transition(ctx context.Context, entryID uuid.UUID, from domain.ProcessingStatus, sets map[string]any) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": entryID, "processing_status": from.String()})
	for col, val := range sets {
		update = update.Set(col, val)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "journal_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: not in state %s: %w", entryID, from, domain.ErrInvalidState)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var (
		entry  domain.JournalEntry
		status string
		parsed []byte
	)

	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Date, &entry.RawText,
		&status, &entry.IsProcessed, &parsed,
		&entry.ProcessingError, &entry.AIResponse,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ProcessingStatus = domain.ProcessingStatus(status)

	if len(parsed) > 0 {
		var data domain.ParsedData
		if err := json.Unmarshal(parsed, &data); err != nil {
			return nil, fmt.Errorf("unmarshal parsed_data: %w", err)
		}
		entry.ParsedData = &data
	}

	return &entry, nil
}

// marshalParsedData serializes ParsedData for the jsonb column (nil → NULL).
func marshalParsedData(data *domain.ParsedData) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
