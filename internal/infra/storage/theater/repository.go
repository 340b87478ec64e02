package theater

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/psqlbuilder"
)

// Repository репозиторий кинотеатров и залов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кинотеатров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTheaterByID получает кинотеатр по ID
func (r *Repository) GetTheaterByID(ctx context.Context, id int64) (*domain.Theater, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "location").
		From("theaters").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTheaterByID - build select query: %v", ErrBuildQuery, err)
	}

	var theater domain.Theater
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTheaterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTheaterByID - scan theater: %v", ErrScanRow, err)
	}

	return &theater, nil
}

// GetScreen получает зал по ID с проверкой принадлежности кинотеатру
func (r *Repository) GetScreen(ctx context.Context, theaterID, screenID int64) (*domain.Screen, error) {
	return r.getScreen(ctx, "GetScreen", psqlbuilder.Select("id", "theater_id", "name").
		From("screens").
		Where(squirrel.Eq{"id": screenID, "theater_id": theaterID}))
}

// GetFirstScreen получает зал кинотеатра с наименьшим ID
// Используется, когда клиент не указал зал явно
func (r *Repository) GetFirstScreen(ctx context.Context, theaterID int64) (*domain.Screen, error) {
	return r.getScreen(ctx, "GetFirstScreen", psqlbuilder.Select("id", "theater_id", "name").
		From("screens").
		Where(squirrel.Eq{"theater_id": theaterID}).
		OrderBy("id ASC").
		Limit(1))
}

func (r *Repository) getScreen(ctx context.Context, op string, builder squirrel.SelectBuilder) (*domain.Screen, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var screen domain.Screen
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScreenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan screen: %v", ErrScanRow, op, err)
	}

	return &screen, nil
}
