package get_screen_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens"
)

const (
	msgInvalidTheaterID = "Invalid theater ID."
	msgInvalidScreenID  = "Invalid screen ID."
	msgInvalidDate      = "Invalid date format. Please use YYYY-MM-DD."
	msgTheaterNotFound  = "Theater not found."
	msgScreenNotFound   = "Screen not found."
)

type Handler struct {
	service  ScreenService
	location *time.Location
	logger   Logger
}

func NewHandler(service ScreenService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/theatres/{theaterId}/screens/{screenId}/schedule
// Query params: start_date, end_date (опциональны, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/screens/{id}/schedule - Invalid theater ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	screenID, err := strconv.ParseInt(vars["screenId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/screens/{id}/schedule - Invalid screen ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScreenID)
		return
	}

	query := r.URL.Query()
	req, err := ToServiceRequest(theaterID, screenID, query.Get("start_date"), query.Get("end_date"), h.location)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/screens/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, screens.ErrTheaterNotFound):
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, screens.ErrScreenNotFound):
			handlers.RespondNotFound(w, msgScreenNotFound)

		case errors.Is(err, screens.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /theatres/{id}/screens/{id}/schedule - Failed to get schedule: theater_id=%d, screen_id=%d, error=%v",
				theaterID, screenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
