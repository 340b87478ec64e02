package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByScreenWithin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 23, 59, 59, 999999000, time.UTC)

	mock.ExpectQuery(`SELECT id, screen_id, movie, start_time, end_time FROM slots WHERE screen_id = \$1 AND start_time >= \$2 AND end_time <= \$3 ORDER BY start_time ASC, id ASC`).
		WithArgs(int64(1), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "screen_id", "movie", "start_time", "end_time"}).
			AddRow(1, 1, "Solaris", from.Add(10*time.Hour), from.Add(12*time.Hour)).
			AddRow(2, 1, "Stalker", from.Add(14*time.Hour), from.Add(16*time.Hour)))

	slots, err := repo.GetByScreenWithin(context.Background(), 1, from, to)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "Solaris", slots[0].Movie)
	assert.Equal(t, int64(2), slots[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByScreenWithin_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM slots`).WillReturnError(errors.New("timeout"))

	_, err = NewRepository(db).GetByScreenWithin(context.Background(), 1, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrExecQuery)
}
