// Package labtest implements the LabTest repository using PostgreSQL.
package labtest

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

const table = "lab_tests"

var columns = []string{
	"id", "user_id", "journal_entry_id", "is_from_journal",
	"name", "result", "value", "unit", "ref_range_min", "ref_range_max",
	"test_date", "created_at",
}

// Repo provides lab-test persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lab-test repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new lab-test record. The nested reference range is
// flattened into min/max columns.
func (r *Repo) Create(ctx context.Context, lt *domain.LabTest) (*domain.LabTest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var refMin, refMax *float64
	if lt.ReferenceRange != nil {
		refMin = lt.ReferenceRange.Min
		refMax = lt.ReferenceRange.Max
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			lt.ID, lt.UserID, lt.JournalEntryID, lt.IsFromJournal,
			lt.Name, lt.Result, lt.Value, lt.Unit, refMin, refMax,
			lt.TestDate, lt.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lab_test", lt.ID)
	}
	return lt, nil
}

// List returns lab tests for a user ordered by test_date DESC with pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LabTest, int, error) {
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
		return nil, 0, fmt.Errorf("count lab_tests: %w", err)
	}

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("test_date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list lab_tests: %w", err)
	}
	defer rows.Close()

	var tests []*domain.LabTest
	for rows.Next() {
		var (
			lt             domain.LabTest
			refMin, refMax *float64
		)
		err := rows.Scan(
			&lt.ID, &lt.UserID, &lt.JournalEntryID, &lt.IsFromJournal,
			&lt.Name, &lt.Result, &lt.Value, &lt.Unit, &refMin, &refMax,
			&lt.TestDate, &lt.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lab_test: %w", err)
		}
		if refMin != nil || refMax != nil {
			lt.ReferenceRange = &domain.ReferenceRange{Min: refMin, Max: refMax}
		}
		tests = append(tests, &lt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate lab_tests: %w", err)
	}

	return tests, total, nil
}
