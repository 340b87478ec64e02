package unavailability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/psqlbuilder"
)

var unavailabilityColumns = []string{
	"id",
	"screen_id",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий окон недоступности залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByKey ищет окно с точно такими же границами для зала
// Если таких окон несколько, возвращается первое по ID
func (r *Repository) FindByKey(ctx context.Context, screenID int64, start, end time.Time) (*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(unavailabilityColumns...).
		From("unavailabilities").
		Where(squirrel.Eq{"screen_id": screenID, "start_time": start, "end_time": end}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - build select query: %v", ErrBuildQuery, err)
	}

	u, err := scanUnavailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnavailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - scan unavailability: %v", ErrScanRow, err)
	}

	return u, nil
}

// Create создает окно недоступности
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, u *domain.Unavailability) (*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unavailabilities").
		Columns("screen_id", "start_time", "end_time", "reason").
		Values(u.ScreenID, u.StartTime, u.EndTime, u.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	u.CreatedAt = createdAt.Time

	return u, nil
}

// GetByScreen получает окна недоступности зала с учетом фильтра
// Порядок: start_time, затем id
func (r *Repository) GetByScreen(ctx context.Context, filter domain.UnavailabilityFilter) ([]*domain.Unavailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(unavailabilityColumns...).
		From("unavailabilities").
		Where(squirrel.Eq{"screen_id": filter.ScreenID})

	if filter.Before != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.Before})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"end_time": *filter.From})
	}

	query, args, err := builder.OrderBy("start_time ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScreen - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScreen - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Unavailability
	for rows.Next() {
		u, err := scanUnavailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByScreen - scan unavailability: %v", ErrScanRow, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByScreen - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUnavailability(row rowScanner) (*domain.Unavailability, error) {
	var u domain.Unavailability
	var reason sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(
		&u.ID,
		&u.ScreenID,
		&u.StartTime,
		&u.EndTime,
		&reason,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if reason.Valid {
		r := reason.String
		u.Reason = &r
	}
	u.CreatedAt = createdAt.Time

	return &u, nil
}
