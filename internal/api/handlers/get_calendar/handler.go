package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
)

const (
	msgInvalidYear  = "Année invalide."
	msgInvalidMonth = "Mois invalide, attendu entre 1 et 12."
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2025&month=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	calendar, err := h.service.GetCalendar(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Month out of range: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, availability.ErrInvalidYear):
			h.logger.Warn("GET /calendar - Year out of range: %d", year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: year=%d, month=%d, available=%d",
		year, month, len(calendar.AvailableDates))
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
