package bookinglog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/psqlbuilder"
)

// Repository репозиторий журнала созданных событий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о созданном событии
func (r *Repository) Create(ctx context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_log").
		Columns(
			"user_id",
			"calendar_id",
			"event_id",
			"title",
			"start_time",
			"end_time",
			"source",
		).
		Values(
			entry.UserID,
			entry.CalendarID,
			entry.EventID,
			entry.Title,
			entry.StartTime,
			entry.EndTime,
			entry.Source,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// GetByUserID возвращает последние записи журнала пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string, limit uint64) ([]*domain.BookingLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"calendar_id",
		"event_id",
		"title",
		"start_time",
		"end_time",
		"source",
		"created_at",
	).
		From("booking_log").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.BookingLogEntry, 0)
	for rows.Next() {
		var entry domain.BookingLogEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.CalendarID,
			&entry.EventID,
			&entry.Title,
			&entry.StartTime,
			&entry.EndTime,
			&entry.Source,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
