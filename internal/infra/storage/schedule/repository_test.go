package schedule

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func scheduleRows(values ...[]driver.Value) *sqlmock.Rows {
	rows := sqlmock.NewRows(scheduleColumns)
	for _, v := range values {
		rows.AddRow(v...)
	}
	return rows
}

func TestGetByScreenAndDay(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM weekly_schedules WHERE day_of_week = \$1 AND screen_id = \$2 ORDER BY id ASC`).
		WithArgs("monday", int64(5)).
		WillReturnRows(scheduleRows(
			[]driver.Value{1, 5, "monday", []byte("10:00:00"), []byte("22:30:00"), now, now},
		))

	schedules, err := repo.GetByScreenAndDay(context.Background(), 5, domain.Monday)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, domain.Monday, schedules[0].DayOfWeek)
	assert.Equal(t, "10:00", schedules[0].OpenTime.String())
	assert.Equal(t, "22:30", schedules[0].CloseTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByScreenAndDay_ReturnsDuplicates(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM weekly_schedules`).
		WillReturnRows(scheduleRows(
			[]driver.Value{1, 5, "monday", "10:00:00", "22:00:00", now, now},
			[]driver.Value{2, 5, "monday", "11:00:00", "23:00:00", now, now},
		))

	schedules, err := repo.GetByScreenAndDay(context.Background(), 5, domain.Monday)
	require.NoError(t, err)
	assert.Len(t, schedules, 2)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO weekly_schedules \(screen_id,day_of_week,open_time,close_time\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id, created_at, updated_at`).
		WithArgs(int64(5), "friday", "09:00:00", "23:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	created, err := repo.Create(context.Background(), &domain.WeeklySchedule{
		ScreenID:  5,
		DayOfWeek: domain.Friday,
		OpenTime:  types.MustTimeString("09:00"),
		CloseTime: types.MustTimeString("23:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHours(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE weekly_schedules SET open_time = \$1, close_time = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("08:00:00", "20:00:00", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateHours(context.Background(), 11, types.MustTimeString("08:00"), types.MustTimeString("20:00"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHours_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE weekly_schedules`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateHours(context.Background(), 99, types.MustTimeString("08:00"), types.MustTimeString("20:00"))
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestCreate_UnsetHours(t *testing.T) {
	repo, mock := newRepo(t)

	_, err := repo.Create(context.Background(), &domain.WeeklySchedule{
		ScreenID:  5,
		DayOfWeek: domain.Friday,
		OpenTime:  types.MustTimeString("09:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHours_UnsetHours(t *testing.T) {
	repo, mock := newRepo(t)

	err := repo.UpdateHours(context.Background(), 11, types.TimeString{}, types.MustTimeString("20:00"))
	assert.ErrorIs(t, err, ErrInvalidHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}
