package add_custom_unavailability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers"
	addCustomUnavailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/add_custom_unavailability"
)

const (
	msgSuccess            = "Custom unavailability added successfully."
	msgInvalidTheaterID   = "Invalid theater ID."
	msgInvalidRequestBody = "Invalid request body."
	msgTheaterNotFound    = "Theater not found."
	msgScreenNotFound     = "Screen not found."
)

type Handler struct {
	useCase AddCustomUnavailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AddCustomUnavailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/theatres/{theaterId}/custom-unavailability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	theaterID, err := strconv.ParseInt(vars["theaterId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /theatres/{id}/custom-unavailability - Invalid theater ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTheaterID)
		return
	}

	var req AddCustomUnavailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /theatres/{id}/custom-unavailability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(theaterID))
	if err != nil {
		switch {
		case errors.Is(err, addCustomUnavailability.ErrTheaterNotFound):
			h.logger.Warn("POST /theatres/{id}/custom-unavailability - Theater not found: theater_id=%d", theaterID)
			handlers.RespondNotFound(w, msgTheaterNotFound)

		case errors.Is(err, addCustomUnavailability.ErrScreenNotFound):
			h.logger.Warn("POST /theatres/{id}/custom-unavailability - Screen not found: theater_id=%d, screen_id=%d",
				theaterID, req.ScreenID)
			handlers.RespondNotFound(w, msgScreenNotFound)

		case errors.Is(err, addCustomUnavailability.ErrInvalidInput),
			errors.Is(err, addCustomUnavailability.ErrInvalidDateFormat),
			errors.Is(err, addCustomUnavailability.ErrInvalidTimeFormat),
			errors.Is(err, addCustomUnavailability.ErrInvalidTimeRange):
			h.logger.Warn("POST /theatres/{id}/custom-unavailability - Rejected: theater_id=%d, error=%v", theaterID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /theatres/{id}/custom-unavailability - Failed to add unavailability: theater_id=%d, screen_id=%d, error=%v",
				theaterID, req.ScreenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /theatres/{id}/custom-unavailability - Added: theater_id=%d, screen_id=%d, slots=%d, days=%d",
		theaterID, result.ScreenID, result.SlotsCreated, result.DaysCreated)
	handlers.RespondMessage(w, http.StatusCreated, msgSuccess)
}
