// Package bodystat implements the BodyStat repository using PostgreSQL.
package bodystat

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

const table = "body_stats"

var columns = []string{
	"id", "user_id", "journal_entry_id", "is_from_journal",
	"date", "weight_kg", "water_intake_liters", "sleep_hours", "steps_count", "created_at",
}

// Repo provides body-stat persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new body-stat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new body-stat record.
func (r *Repo) Create(ctx context.Context, b *domain.BodyStat) (*domain.BodyStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			b.ID, b.UserID, b.JournalEntryID, b.IsFromJournal,
			b.Date, b.WeightKg, b.WaterIntakeLiters, b.SleepHours, b.StepsCount, b.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "body_stat", b.ID)
	}
	return b, nil
}

// List returns body stats for a user ordered by date DESC with pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.BodyStat, int, error) {
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
		return nil, 0, fmt.Errorf("count body_stats: %w", err)
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
		return nil, 0, fmt.Errorf("list body_stats: %w", err)
	}
	defer rows.Close()

	var stats []*domain.BodyStat
	for rows.Next() {
		var b domain.BodyStat
		err := rows.Scan(
			&b.ID, &b.UserID, &b.JournalEntryID, &b.IsFromJournal,
			&b.Date, &b.WeightKg, &b.WaterIntakeLiters, &b.SleepHours, &b.StepsCount, &b.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan body_stat: %w", err)
		}
		stats = append(stats, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate body_stats: %w", err)
	}

	return stats, total, nil
}
