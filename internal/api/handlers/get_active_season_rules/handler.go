package get_active_season_rules

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

// Handle GET /api/v1/season-rules/active
// Всегда отвечает 200: при недоступном хранилище отдаются правила по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetActive(r.Context())

	h.logger.Info("GET /season-rules/active - %d rules served from %s", len(result.Rules), result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
