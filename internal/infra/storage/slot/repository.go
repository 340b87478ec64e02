package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/psqlbuilder"
)

// Repository репозиторий сеансов; слоты создаются внешней системой, здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByScreenWithin получает слоты зала, целиком лежащие в [from, to]
// Порядок: start_time, затем id
func (r *Repository) GetByScreenWithin(ctx context.Context, screenID int64, from, to time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "screen_id", "movie", "start_time", "end_time").
		From("slots").
		Where(squirrel.Eq{"screen_id": screenID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.LtOrEq{"end_time": to}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScreenWithin - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScreenWithin - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []*domain.Slot
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.ScreenID,
			&slot.Movie,
			&slot.StartTime,
			&slot.EndTime,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByScreenWithin - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByScreenWithin - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}
