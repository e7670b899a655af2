// Package meal implements the Meal repository using PostgreSQL.
package meal

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/arjunbhatia/healthlog-backend/internal/adapter/postgres"
	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "meals"

var columns = []string{
	"id", "user_id", "journal_entry_id", "is_from_journal",
	"date", "meal_time", "items", "quantity", "calories", "notes", "created_at",
}

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new meal record.
func (r *Repo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			m.ID, m.UserID, m.JournalEntryID, m.IsFromJournal,
			m.Date, m.MealTime, m.Items, m.Quantity, m.Calories, m.Notes, m.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meal", m.ID)
	}
	return m, nil
}

// List returns meals for a user ordered by date DESC with pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Meal, int, error) {
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
		return nil, 0, fmt.Errorf("count meals: %w", err)
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
		return nil, 0, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var meals []*domain.Meal
	for rows.Next() {
		var m domain.Meal
		err := rows.Scan(
			&m.ID, &m.UserID, &m.JournalEntryID, &m.IsFromJournal,
			&m.Date, &m.MealTime, &m.Items, &m.Quantity, &m.Calories, &m.Notes, &m.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate meals: %w", err)
	}

	return meals, total, nil
}

// ListByJournalEntry returns meals derived from a specific journal entry.
func (r *Repo) ListByJournalEntry(ctx context.Context, userID, entryID uuid.UUID) ([]*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "journal_entry_id": entryID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals by journal entry: %w", err)
	}
	defer rows.Close()

	var meals []*domain.Meal
	for rows.Next() {
		var m domain.Meal
		err := rows.Scan(
			&m.ID, &m.UserID, &m.JournalEntryID, &m.IsFromJournal,
			&m.Date, &m.MealTime, &m.Items, &m.Quantity, &m.Calories, &m.Notes, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, &m)
	}
	return meals, rows.Err()
}
