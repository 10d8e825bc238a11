package refresh_season_rules

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
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

// Handle POST /api/v1/season-rules/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Refresh(r.Context())

	h.logger.Info("POST /season-rules/refresh - Rule cache reloaded: %d rules from %s", len(result.Rules), result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
