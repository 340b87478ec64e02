package configure_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/logger"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/ptr"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

var msk = time.FixedZone("MSK", 3*60*60)

type testEnv struct {
	store     *fakeStore
	tx        *fakeTxManager
	cache     *fakeCache
	publisher *fakePublisher
	metrics   *fakeMetrics
	uc        *UseCase
}

func newTestEnv(now time.Time) *testEnv {
	store := newFakeStore()
	env := &testEnv{
		store:     store,
		tx:        &fakeTxManager{s: store},
		cache:     &fakeCache{},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}
	env.uc = NewUseCase(
		&fakeTheaterRepo{s: store},
		&fakeScheduleRepo{s: store},
		&fakeUnavailabilityRepo{s: store},
		env.tx,
		env.cache,
		env.publisher,
		env.metrics,
		fixedTime{now: now},
		msk,
		logger.NewNop(),
	)
	return env
}

var callTime = time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC) // пятница, 10:00 MSK

func TestExecute_CreatesSchedule(t *testing.T) {
	env := newTestEnv(callTime)

	resp, err := env.uc.Execute(context.Background(), &Request{
		TheaterID: 1,
		ScreenID:  ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{
			"Monday":  {Open: "10:00", Close: "23:00"},
			"tuesday": {Open: "09:30", Close: "22:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ScreenID)
	assert.Equal(t, 2, resp.SchedulesCreated)
	assert.Equal(t, 0, resp.SchedulesUpdated)

	monday := env.store.schedulesFor(11, domain.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, "10:00", monday[0].OpenTime.String())
	assert.Equal(t, "23:00", monday[0].CloseTime.String())

	assert.Equal(t, []int64{11}, env.cache.invalidated)
	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, domain.UnavailabilityKindWeekly, env.publisher.events[0].Kind)
	assert.Equal(t, 2, env.publisher.events[0].Count)
}

func TestExecute_ReconcileIsIdempotent(t *testing.T) {
	env := newTestEnv(callTime)
	req := &Request{
		TheaterID: 1,
		ScreenID:  ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{
			"monday": {Open: "10:00", Close: "23:00"},
		},
	}

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	first := env.store.schedulesFor(11, domain.Monday)

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SchedulesCreated)
	assert.Equal(t, 1, resp.SchedulesUpdated)

	second := env.store.schedulesFor(11, domain.Monday)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].OpenTime.String(), second[0].OpenTime.String())
	assert.Equal(t, first[0].CloseTime.String(), second[0].CloseTime.String())
}

func TestExecute_UpdatesInPlaceAndKeepsOtherDays(t *testing.T) {
	env := newTestEnv(callTime)
	env.store.schedules = []domain.WeeklySchedule{
		{ID: 1, ScreenID: 11, DayOfWeek: domain.Monday, OpenTime: types.MustTimeString("08:00"), CloseTime: types.MustTimeString("20:00")},
		{ID: 2, ScreenID: 11, DayOfWeek: domain.Sunday, OpenTime: types.MustTimeString("12:00"), CloseTime: types.MustTimeString("18:00")},
	}

	_, err := env.uc.Execute(context.Background(), &Request{
		TheaterID:      1,
		ScreenID:       ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{"MONDAY": {Open: "11:00", Close: "21:00"}},
	})
	require.NoError(t, err)

	monday := env.store.schedulesFor(11, domain.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, int64(1), monday[0].ID)
	assert.Equal(t, "11:00", monday[0].OpenTime.String())

	sunday := env.store.schedulesFor(11, domain.Sunday)
	require.Len(t, sunday, 1)
	assert.Equal(t, "12:00", sunday[0].OpenTime.String())
}

func TestExecute_AmbiguousDayAbortsWholeRequest(t *testing.T) {
	env := newTestEnv(callTime)
	env.store.schedules = []domain.WeeklySchedule{
		{ID: 1, ScreenID: 11, DayOfWeek: domain.Wednesday, OpenTime: types.MustTimeString("08:00"), CloseTime: types.MustTimeString("20:00")},
		{ID: 2, ScreenID: 11, DayOfWeek: domain.Wednesday, OpenTime: types.MustTimeString("09:00"), CloseTime: types.MustTimeString("21:00")},
	}

	_, err := env.uc.Execute(context.Background(), &Request{
		TheaterID: 1,
		ScreenID:  ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{
			"monday":    {Open: "10:00", Close: "22:00"},
			"wednesday": {Open: "10:00", Close: "22:00"},
		},
		WeeklyUnavailability: map[string][]TimeRange{
			"friday": {{Start: "12:00", End: "13:00"}},
		},
	})
	require.ErrorIs(t, err, ErrAmbiguousSchedule)

	assert.Empty(t, env.store.schedulesFor(11, domain.Monday), "monday must be rolled back")
	assert.Empty(t, env.store.windows)

	wednesday := env.store.schedulesFor(11, domain.Wednesday)
	require.Len(t, wednesday, 2)
	assert.Equal(t, "08:00", wednesday[0].OpenTime.String())

	assert.Empty(t, env.cache.invalidated)
	assert.Empty(t, env.publisher.events)
}

func TestExecute_ValidationErrorsWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "malformed open time",
			req: &Request{TheaterID: 1, WeeklySchedule: map[string]DayHours{
				"monday":  {Open: "10:00", Close: "22:00"},
				"tuesday": {Open: "25:99", Close: "22:00"},
			}},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name: "malformed unavailability time",
			req: &Request{TheaterID: 1,
				WeeklySchedule:       map[string]DayHours{"monday": {Open: "10:00", Close: "22:00"}},
				WeeklyUnavailability: map[string][]TimeRange{"monday": {{Start: "noon", End: "13:00"}}},
			},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "unknown day",
			req:     &Request{TheaterID: 1, WeeklySchedule: map[string]DayHours{"funday": {Open: "10:00", Close: "22:00"}}},
			wantErr: ErrInvalidDay,
		},
		{
			name: "same day twice",
			req: &Request{TheaterID: 1, WeeklySchedule: map[string]DayHours{
				"Monday": {Open: "10:00", Close: "22:00"},
				"monday": {Open: "11:00", Close: "22:00"},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "inverted window",
			req:     &Request{TheaterID: 1, WeeklyUnavailability: map[string][]TimeRange{"monday": {{Start: "14:00", End: "13:00"}}}},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "window crossing midnight",
			req:     &Request{TheaterID: 1, WeeklyUnavailability: map[string][]TimeRange{"friday": {{Start: "22:00", End: "02:00"}}}},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "non-positive theater",
			req:     &Request{TheaterID: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive screen",
			req:     &Request{TheaterID: 1, ScreenID: ptr.Ptr(int64(-1))},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(callTime)

			_, err := env.uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, 0, env.tx.calls)
			assert.Empty(t, env.store.schedules)
			assert.Empty(t, env.store.windows)
		})
	}
}

func TestExecute_WeeklyUnavailabilityAnchoredToCallDate(t *testing.T) {
	env := newTestEnv(callTime)
	req := &Request{
		TheaterID: 1,
		ScreenID:  ptr.Ptr(int64(11)),
		WeeklyUnavailability: map[string][]TimeRange{
			// день недели не влияет на дату окна
			"monday": {{Start: "12:00", End: "13:00"}},
		},
	}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.UnavailabilityCreated)

	require.Len(t, env.store.windows, 1)
	w := env.store.windows[0]
	assert.True(t, w.StartTime.Equal(time.Date(2024, 3, 15, 12, 0, 0, 0, msk)))
	assert.True(t, w.EndTime.Equal(time.Date(2024, 3, 15, 13, 0, 0, 0, msk)))
	assert.Nil(t, w.Reason)
	assert.Equal(t, 1, env.metrics.written[domain.UnavailabilityKindWeekly])

	// повтор с теми же границами ничего не создает
	resp, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnavailabilityCreated)
	assert.Equal(t, 1, resp.UnavailabilityUnchanged)
	assert.Len(t, env.store.windows, 1)
	assert.Len(t, env.publisher.events, 1, "unchanged request publishes nothing")

	// сдвиг на минуту создает новое окно, старое остается
	req.WeeklyUnavailability["monday"][0].End = "13:01"
	_, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, env.store.windows, 2)
}

func TestExecute_AnchorUsesServiceTimezone(t *testing.T) {
	// 22:30 UTC 15 марта - это уже 16 марта по Москве
	env := newTestEnv(time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC))

	_, err := env.uc.Execute(context.Background(), &Request{
		TheaterID:            1,
		ScreenID:             ptr.Ptr(int64(11)),
		WeeklyUnavailability: map[string][]TimeRange{"saturday": {{Start: "09:00", End: "10:00"}}},
	})
	require.NoError(t, err)

	require.Len(t, env.store.windows, 1)
	assert.True(t, env.store.windows[0].StartTime.Equal(time.Date(2024, 3, 16, 9, 0, 0, 0, msk)))
}

func TestExecute_ScreenResolution(t *testing.T) {
	t.Run("first screen when not given", func(t *testing.T) {
		env := newTestEnv(callTime)
		resp, err := env.uc.Execute(context.Background(), &Request{
			TheaterID:      1,
			WeeklySchedule: map[string]DayHours{"monday": {Open: "10:00", Close: "22:00"}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ScreenID)
	})

	t.Run("theater without screens", func(t *testing.T) {
		env := newTestEnv(callTime)
		_, err := env.uc.Execute(context.Background(), &Request{TheaterID: 2})
		assert.ErrorIs(t, err, ErrNoScreens)
	})

	t.Run("unknown theater", func(t *testing.T) {
		env := newTestEnv(callTime)
		_, err := env.uc.Execute(context.Background(), &Request{TheaterID: 404})
		assert.ErrorIs(t, err, ErrTheaterNotFound)
	})

	t.Run("screen of another theater", func(t *testing.T) {
		env := newTestEnv(callTime)
		_, err := env.uc.Execute(context.Background(), &Request{TheaterID: 1, ScreenID: ptr.Ptr(int64(30))})
		assert.ErrorIs(t, err, ErrScreenNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		env := newTestEnv(callTime)
		env.store.theaterErr = errors.New("connection refused")
		_, err := env.uc.Execute(context.Background(), &Request{TheaterID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_NotificationFailuresDoNotFailRequest(t *testing.T) {
	env := newTestEnv(callTime)
	env.cache.err = errors.New("redis down")
	env.publisher.err = errors.New("broker down")

	_, err := env.uc.Execute(context.Background(), &Request{
		TheaterID:      1,
		ScreenID:       ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{"monday": {Open: "10:00", Close: "22:00"}},
	})
	require.NoError(t, err)
	assert.Len(t, env.store.schedules, 1)
}

func TestExecute_WritesRunInSerializableTransaction(t *testing.T) {
	env := newTestEnv(callTime)

	_, err := env.uc.Execute(context.Background(), &Request{
		TheaterID: 1,
		ScreenID:  ptr.Ptr(int64(11)),
		WeeklySchedule: map[string]DayHours{
			"monday": {Open: "10:00", Close: "23:00"},
		},
		WeeklyUnavailability: map[string][]TimeRange{
			"monday": {{Start: "12:00", End: "13:00"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.tx.calls)
	assert.Equal(t, 0, env.store.writesOutsideTx)
	assert.Len(t, env.store.windows, 1)
}

func TestRequest_ScreenRef(t *testing.T) {
	assert.Equal(t, "first", (&Request{}).ScreenRef())
	assert.Equal(t, "3", (&Request{ScreenID: ptr.Ptr(int64(3))}).ScreenRef())
}
