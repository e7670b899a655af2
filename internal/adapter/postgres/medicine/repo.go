// Package medicine implements the Medicine repository using PostgreSQL.
package medicine

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

const table = "medicines"

var columns = []string{
	"id", "user_id", "journal_entry_id", "is_from_journal",
	"name", "time_of_day", "dosage", "start_date", "created_at",
}

// Repo provides medicine persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new medicine repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new medicine record.
func (r *Repo) Create(ctx context.Context, m *domain.Medicine) (*domain.Medicine, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			m.ID, m.UserID, m.JournalEntryID, m.IsFromJournal,
			m.Name, m.TimeOfDay, m.Dosage, m.StartDate, m.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "medicine", m.ID)
	}
	return m, nil
}

// List returns medicines for a user ordered by start_date DESC with pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Medicine, int, error) {
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
		return nil, 0, fmt.Errorf("count medicines: %w", err)
	}

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	var medicines []*domain.Medicine
	for rows.Next() {
		var m domain.Medicine
		err := rows.Scan(
			&m.ID, &m.UserID, &m.JournalEntryID, &m.IsFromJournal,
			&m.Name, &m.TimeOfDay, &m.Dosage, &m.StartDate, &m.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan medicine: %w", err)
		}
		medicines = append(medicines, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate medicines: %w", err)
	}

	return medicines, total, nil
}
