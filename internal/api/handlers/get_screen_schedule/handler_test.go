package get_screen_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens"
	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens/models"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/logger"
)

type fakeService struct {
	got *models.GetScheduleRequest
	err error
}

func (f *fakeService) GetSchedule(_ context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{
		TheaterID:  req.TheaterID,
		ScreenID:   req.ScreenID,
		ScreenName: "Hall 1",
		WeeklySchedule: []models.DayScheduleResponse{
			{ID: 1, DayOfWeek: "monday", OpenTime: "10:00", CloseTime: "22:00"},
		},
		Unavailability: []models.WindowResponse{},
	}, nil
}

func doRequest(h *Handler, theaterID, screenID, rawQuery string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/theatres/"+theaterID+"/screens/"+screenID+"/schedule?"+rawQuery, nil)
	r = mux.SetURLVars(r, map[string]string{"theaterId": theaterID, "screenId": screenID})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, time.UTC, logger.NewNop())

	rec := doRequest(h, "1", "2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"theater_id": 1,
		"screen_id": 2,
		"screen_name": "Hall 1",
		"weekly_schedule": [{"id": 1, "day_of_week": "monday", "open_time": "10:00", "close_time": "22:00"}],
		"unavailability": []
	}`, rec.Body.String())
	assert.Nil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)
}

func TestHandle_DateRange(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, time.UTC, logger.NewNop())

	rec := doRequest(h, "1", "2", "start_date=2024-12-01&end_date=2024-12-07")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.StartDate)
	require.NotNil(t, svc.got.EndDate)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), *svc.got.StartDate)
	assert.Equal(t, time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC), *svc.got.EndDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		screenID   string
		query      string
		err        error
		wantStatus int
	}{
		{name: "bad screen id", screenID: "x", wantStatus: http.StatusBadRequest},
		{name: "bad date", screenID: "2", query: "start_date=tomorrow", wantStatus: http.StatusBadRequest},
		{name: "theater not found", screenID: "2", err: screens.ErrTheaterNotFound, wantStatus: http.StatusNotFound},
		{name: "screen not found", screenID: "2", err: screens.ErrScreenNotFound, wantStatus: http.StatusNotFound},
		{name: "inverted range", screenID: "2", err: screens.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", screenID: "2", err: screens.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, time.UTC, logger.NewNop())

			rec := doRequest(h, "1", tt.screenID, tt.query)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
