package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide."
	msgInvalidDate        = "Format de date invalide, attendu AAAA-MM-JJ."
	msgInvalidInput       = "Données de réservation invalides."
	msgInvalidDateRange   = "La date de départ doit être postérieure à la date d'arrivée."
	msgDateInPast         = "La date d'arrivée ne peut pas être dans le passé."
	msgDatesUnavailable   = "Les dates sélectionnées ne sont pas disponibles."
)

type Handler struct {
	useCase          CreateReservationUseCase
	isAdministrative bool
	route            string
	logger           Logger
}

// NewHandler обработчик заявок гостей
func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		route:   "POST /reservations",
		logger:  logger,
	}
}

// NewAdminHandler обработчик заявок администратора: без правил сезона, со статусом на выбор
func NewAdminHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:          useCase,
		isAdministrative: true,
		route:            "POST /admin/reservations",
		logger:           logger,
	}
}

// Handle POST /api/v1/reservations и POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.isAdministrative)
	if err != nil {
		h.logger.Warn("%s - Failed to parse dates: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createReservation.RejectionError
		switch {
		case errors.As(err, &rejection) && errors.Is(err, createReservation.ErrDatesUnavailable):
			h.logger.Warn("%s - Dates unavailable: %s..%s", h.route, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, reasonOr(rejection.Reason, msgDatesUnavailable))

		case errors.As(err, &rejection) && errors.Is(err, createReservation.ErrRulesViolated):
			h.logger.Warn("%s - Booking rules violated: %s..%s: %s", h.route, req.StartDate, req.EndDate, rejection.Reason)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejection.Reason)

		case errors.Is(err, createReservation.ErrInvalidDateRange):
			h.logger.Warn("%s - Invalid range: %s..%s", h.route, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("%s - Start date in the past: %s", h.route, req.StartDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to create reservation: %s..%s, error=%v", h.route, req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reservation created successfully: id=%s, status=%s", h.route, result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func reasonOr(reason, fallback string) string {
	if reason == "" {
		return fallback
	}
	return reason
}
