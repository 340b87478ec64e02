package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/get_available_slots"
)

const (
	msgInvalidTheaterID = "Invalid theater ID."
	msgInvalidScreenID  = "Invalid screen ID."
	msgMissingParams    = "screen_id, start_date, and end_date are required parameters."
	msgInvalidDate      = "Invalid date format. Please use YYYY-MM-DD."
	msgTheaterNotFound  = "Theater not found."
	msgScreenNotFound   = "Screen not found."
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler создает handler; даты из query параметров читаются в зоне location
func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/theatres/{theaterId}/slots
// Query params: screen_id, start_date, end_date (все обязательны, даты YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/slots - Invalid theater ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	query := r.URL.Query()
	screenIDStr := query.Get("screen_id")
	startDateStr := query.Get("start_date")
	endDateStr := query.Get("end_date")

	if screenIDStr == "" || startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /theatres/{id}/slots - Missing parameters: theater_id=%d", theaterID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	screenID, err := strconv.ParseInt(screenIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/slots - Invalid screen ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScreenID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(theaterID, screenID, startDateStr, endDateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /theatres/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTheaterNotFound):
			h.logger.Warn("GET /theatres/{id}/slots - Theater not found: theater_id=%d", theaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, getAvailableSlots.ErrScreenNotFound):
			h.logger.Warn("GET /theatres/{id}/slots - Screen not found: theater_id=%d, screen_id=%d", theaterID, screenID)
			handlers.RespondNotFound(w, msgScreenNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput),
			errors.Is(err, getAvailableSlots.ErrInvalidRange):
			h.logger.Warn("GET /theatres/{id}/slots - Rejected: theater_id=%d, error=%v", theaterID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /theatres/{id}/slots - Failed to get slots: theater_id=%d, screen_id=%d, error=%v",
				theaterID, screenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /theatres/{id}/slots - Slots retrieved successfully: theater_id=%d, screen_id=%d, slots_count=%d",
		theaterID, screenID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
