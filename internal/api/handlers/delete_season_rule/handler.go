package delete_season_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules"
)

const msgNotFound = "Règle de saison introuvable."

type Handler struct {
	service SeasonRuleService
	logger  Logger
}

func NewHandler(service SeasonRuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/season-rules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, seasonrules.ErrSeasonRuleNotFound):
			h.logger.Warn("DELETE /season-rules/{id} - Season rule not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /season-rules/{id} - Failed to delete season rule: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /season-rules/{id} - Season rule deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
