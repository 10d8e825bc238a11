package update_season_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide."
	msgInvalidRule        = "Règle de saison invalide."
	msgNotFound           = "Règle de saison introuvable."
)

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

// Handle PUT /api/v1/season-rules/{id}
// Полная замена правила.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.SeasonRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /season-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, seasonrules.ErrInvalidInput):
			h.logger.Warn("PUT /season-rules/{id} - Invalid rule: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, seasonrules.ErrSeasonRuleNotFound):
			h.logger.Warn("PUT /season-rules/{id} - Season rule not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /season-rules/{id} - Failed to update season rule: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /season-rules/{id} - Season rule updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
