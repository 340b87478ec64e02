package configure_availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
	"github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/unavailability"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

// fakeStore хранилище в памяти; fakeTxManager откатывает его при ошибке
type fakeStore struct {
	theaters  map[int64]*domain.Theater
	screens   []*domain.Screen
	schedules []domain.WeeklySchedule
	windows   []domain.Unavailability
	nextID    int64

	// inTx выставляется на время DoSerializable; writesOutsideTx считает записи вне неё
	inTx            bool
	writesOutsideTx int

	theaterErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		theaters: map[int64]*domain.Theater{
			1: {ID: 1, Name: "Octopus"},
			2: {ID: 2, Name: "Empty"},
		},
		screens: []*domain.Screen{
			{ID: 12, TheaterID: 1, Name: "Hall B"},
			{ID: 11, TheaterID: 1, Name: "Hall A"},
			{ID: 30, TheaterID: 3, Name: "Foreign"},
		},
		nextID: 100,
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) schedulesFor(screenID int64, day domain.DayOfWeek) []domain.WeeklySchedule {
	var result []domain.WeeklySchedule
	for _, sc := range s.schedules {
		if sc.ScreenID == screenID && sc.DayOfWeek == day {
			result = append(result, sc)
		}
	}
	return result
}

func (s *fakeStore) trackWrite() {
	if !s.inTx {
		s.writesOutsideTx++
	}
}

type fakeTheaterRepo struct{ s *fakeStore }

func (r *fakeTheaterRepo) GetTheaterByID(_ context.Context, id int64) (*domain.Theater, error) {
	if r.s.theaterErr != nil {
		return nil, r.s.theaterErr
	}
	t, ok := r.s.theaters[id]
	if !ok {
		return nil, theater.ErrTheaterNotFound
	}
	return t, nil
}

func (r *fakeTheaterRepo) GetScreen(_ context.Context, theaterID, screenID int64) (*domain.Screen, error) {
	for _, sc := range r.s.screens {
		if sc.ID == screenID && sc.TheaterID == theaterID {
			return sc, nil
		}
	}
	return nil, theater.ErrScreenNotFound
}

func (r *fakeTheaterRepo) GetFirstScreen(_ context.Context, theaterID int64) (*domain.Screen, error) {
	var owned []*domain.Screen
	for _, sc := range r.s.screens {
		if sc.TheaterID == theaterID {
			owned = append(owned, sc)
		}
	}
	if len(owned) == 0 {
		return nil, theater.ErrScreenNotFound
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned[0], nil
}

type fakeScheduleRepo struct{ s *fakeStore }

func (r *fakeScheduleRepo) GetByScreenAndDay(_ context.Context, screenID int64, day domain.DayOfWeek) ([]*domain.WeeklySchedule, error) {
	var result []*domain.WeeklySchedule
	for _, sc := range r.s.schedulesFor(screenID, day) {
		sc := sc
		result = append(result, &sc)
	}
	return result, nil
}

func (r *fakeScheduleRepo) Create(_ context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	r.s.trackWrite()
	schedule.ID = r.s.id()
	r.s.schedules = append(r.s.schedules, *schedule)
	return schedule, nil
}

func (r *fakeScheduleRepo) UpdateHours(_ context.Context, id int64, openTime, closeTime types.TimeString) error {
	r.s.trackWrite()
	for i := range r.s.schedules {
		if r.s.schedules[i].ID == id {
			r.s.schedules[i].OpenTime = openTime
			r.s.schedules[i].CloseTime = closeTime
			return nil
		}
	}
	return errors.New("schedule not found")
}

type fakeUnavailabilityRepo struct{ s *fakeStore }

func (r *fakeUnavailabilityRepo) FindByKey(_ context.Context, screenID int64, start, end time.Time) (*domain.Unavailability, error) {
	for _, w := range r.s.windows {
		if w.ScreenID == screenID && w.StartTime.Equal(start) && w.EndTime.Equal(end) {
			w := w
			return &w, nil
		}
	}
	return nil, unavailability.ErrUnavailabilityNotFound
}

func (r *fakeUnavailabilityRepo) Create(_ context.Context, u *domain.Unavailability) (*domain.Unavailability, error) {
	r.s.trackWrite()
	u.ID = r.s.id()
	r.s.windows = append(r.s.windows, *u)
	return u, nil
}

// fakeTxManager снимает копию хранилища и восстанавливает её, если fn вернула ошибку
type fakeTxManager struct {
	s     *fakeStore
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++

	schedules := append([]domain.WeeklySchedule(nil), m.s.schedules...)
	windows := append([]domain.Unavailability(nil), m.s.windows...)

	m.s.inTx = true
	defer func() { m.s.inTx = false }()

	if err := fn(ctx); err != nil {
		m.s.schedules = schedules
		m.s.windows = windows
		return err
	}
	return nil
}

type fakeCache struct {
	invalidated []int64
	err         error
}

func (c *fakeCache) Invalidate(_ context.Context, screenID int64) error {
	c.invalidated = append(c.invalidated, screenID)
	return c.err
}

type fakePublisher struct {
	events []eventbus.AvailabilityChanged
	err    error
}

func (p *fakePublisher) PublishAvailabilityChanged(_ context.Context, event eventbus.AvailabilityChanged) error {
	p.events = append(p.events, event)
	return p.err
}

type fakeMetrics struct {
	written map[string]int
}

func (m *fakeMetrics) ObserveUnavailabilityWritten(kind string, count int) {
	if m.written == nil {
		m.written = make(map[string]int)
	}
	m.written[kind] += count
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }
