package create_season_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules"
	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide."
	msgInvalidRule        = "Règle de saison invalide."
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

// Handle POST /api/v1/season-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SeasonRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /season-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, seasonrules.ErrInvalidInput):
			h.logger.Warn("POST /season-rules - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /season-rules - Failed to create season rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /season-rules - Season rule created: id=%s", rule.ID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
