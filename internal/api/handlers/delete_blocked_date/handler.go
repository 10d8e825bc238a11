package delete_blocked_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates"
)

const msgNotFound = "Période bloquée introuvable."

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

// Handle DELETE /api/v1/blocked-dates/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /blocked-dates/{id} - Blocked date not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blocked-dates/{id} - Failed to delete blocked date: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-dates/{id} - Blocked date deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
