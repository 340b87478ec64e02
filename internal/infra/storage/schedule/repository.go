package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

var scheduleColumns = []string{
	"id",
	"screen_id",
	"day_of_week",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельного расписания залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByScreenAndDay получает все записи расписания зала на день недели
// В корректных данных запись одна; несколько записей означают неоднозначное состояние,
// решение о нем принимает вызывающий код
func (r *Repository) GetByScreenAndDay(ctx context.Context, screenID int64, day domain.DayOfWeek) ([]*domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"screen_id": screenID, "day_of_week": string(day)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScreenAndDay - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByScreenAndDay", query, args)
}

// GetAllByScreen получает все записи расписания зала
func (r *Repository) GetAllByScreen(ctx context.Context, screenID int64) ([]*domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("weekly_schedules").
		Where(squirrel.Eq{"screen_id": screenID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByScreen - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetAllByScreen", query, args)
}

// Create создает запись расписания
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	if err := validateHours(schedule.OpenTime, schedule.CloseTime); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrInvalidHours, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_schedules").
		Columns("screen_id", "day_of_week", "open_time", "close_time").
		Values(schedule.ScreenID, string(schedule.DayOfWeek), schedule.OpenTime, schedule.CloseTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// UpdateHours обновляет время открытия и закрытия существующей записи, ID не меняется
func (r *Repository) UpdateHours(ctx context.Context, id int64, openTime, closeTime types.TimeString) error {
	if err := validateHours(openTime, closeTime); err != nil {
		return fmt.Errorf("%w: UpdateHours: %v", ErrInvalidHours, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("weekly_schedules").
		Set("open_time", openTime).
		Set("close_time", closeTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var schedules []*domain.WeeklySchedule
	for rows.Next() {
		var schedule domain.WeeklySchedule
		var day string
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&schedule.ID,
			&schedule.ScreenID,
			&day,
			&schedule.OpenTime,
			&schedule.CloseTime,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan schedule: %v", ErrScanRow, op, err)
		}

		schedule.DayOfWeek = domain.DayOfWeek(day)
		schedule.CreatedAt = createdAt.Time
		schedule.UpdatedAt = updatedAt.Time
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return schedules, nil
}

// validateHours не дает записать NULL в open_time/close_time
func validateHours(openTime, closeTime types.TimeString) error {
	if err := openTime.Validate(); err != nil {
		return err
	}
	return closeTime.Validate()
}
