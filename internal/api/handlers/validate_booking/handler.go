package validate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide."
	msgInvalidDate        = "Format de date invalide, attendu AAAA-MM-JJ."
	msgInvalidDateRange   = "La date de fin doit être postérieure à la date de début."
)

type Handler struct {
	validator BookingValidator
	logger    Logger
}

func NewHandler(validator BookingValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings/validate
// Проверяет минимальную длительность и разрыв, занятость дат не проверяется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, end, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	verdict, err := h.validator.ValidateBooking(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings/validate - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate booking: %s..%s, error=%v",
				req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !verdict.Valid {
		h.logger.Warn("POST /bookings/validate - %s..%s rejected: %s", req.StartDate, req.EndDate, verdict.Reason)
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.VerdictResponse{Valid: verdict.Valid, Reason: verdict.Reason})
}
