package check_availability

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
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
// Публичная проверка всегда идет без административных послаблений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.DateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, end, err := req.Parse()
	if err != nil {
		h.logger.Warn("POST /availability/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	verdict, err := h.service.CheckAvailability(r.Context(), start, end, false)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange):
			h.logger.Warn("POST /availability/check - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: %s..%s, error=%v",
				req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - %s..%s available=%t", req.StartDate, req.EndDate, verdict.Valid)
	handlers.RespondJSON(w, http.StatusOK, handlers.VerdictResponse{Valid: verdict.Valid, Reason: verdict.Reason})
}
