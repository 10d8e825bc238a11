package get_season_rule

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

// Handle GET /api/v1/season-rules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rule, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, seasonrules.ErrSeasonRuleNotFound):
			h.logger.Warn("GET /season-rules/{id} - Season rule not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /season-rules/{id} - Failed to get season rule: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rule)
}
