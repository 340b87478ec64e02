package configure_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers"
	configureAvailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/configure_availability"
)

const (
	msgSuccess            = "Weekly schedule and unavailability configured successfully."
	msgInvalidTheaterID   = "Invalid theater ID."
	msgInvalidRequestBody = "Invalid request body."
	msgTheaterNotFound    = "Theater not found."
	msgScreenNotFound     = "Screen not found."
	msgNoScreens          = "No screens available for this theater."
)

type Handler struct {
	useCase ConfigureAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ConfigureAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/theatres/{theaterId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /theatres/{id}/availability - Invalid theater ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	var req ConfigureAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /theatres/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq := req.ToUseCaseRequest(theaterID)
	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, configureAvailability.ErrTheaterNotFound):
			h.logger.Warn("POST /theatres/{id}/availability - Theater not found: theater_id=%d", theaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, configureAvailability.ErrScreenNotFound):
			h.logger.Warn("POST /theatres/{id}/availability - Screen not found: theater_id=%d, screen_id=%s",
				theaterID, ucReq.ScreenRef())
			handlers.RespondNotFound(w, msgScreenNotFound)

		case errors.Is(err, configureAvailability.ErrNoScreens):
			h.logger.Warn("POST /theatres/{id}/availability - No screens: theater_id=%d", theaterID)
			handlers.RespondNotFound(w, msgNoScreens)

		case errors.Is(err, configureAvailability.ErrInvalidInput),
			errors.Is(err, configureAvailability.ErrInvalidDay),
			errors.Is(err, configureAvailability.ErrInvalidTimeFormat),
			errors.Is(err, configureAvailability.ErrInvalidTimeRange),
			errors.Is(err, configureAvailability.ErrAmbiguousSchedule):
			h.logger.Warn("POST /theatres/{id}/availability - Rejected: theater_id=%d, error=%v", theaterID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /theatres/{id}/availability - Failed to configure availability: theater_id=%d, error=%v",
				theaterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /theatres/{id}/availability - Configured: theater_id=%d, screen_id=%d, schedules_created=%d, schedules_updated=%d, windows_created=%d",
		theaterID, result.ScreenID, result.SchedulesCreated, result.SchedulesUpdated, result.UnavailabilityCreated)
	handlers.RespondMessage(w, http.StatusCreated, msgSuccess)
}
