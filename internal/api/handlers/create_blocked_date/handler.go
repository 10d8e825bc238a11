package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide."
	msgInvalidDate        = "Format de date invalide, attendu AAAA-MM-JJ."
	msgInvalidDateRange   = "La date de fin doit être postérieure à la date de début."
	msgInvalidInput       = "Motif de blocage trop long."
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocked, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidDateRange):
			h.logger.Warn("POST /blocked-dates - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, blockeddates.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-dates - Failed to block dates: %s..%s, error=%v", req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Dates blocked: id=%s", blocked.ID)
	handlers.RespondJSON(w, http.StatusCreated, blocked)
}
