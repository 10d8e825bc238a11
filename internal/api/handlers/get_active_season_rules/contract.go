package get_active_season_rules

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

type SeasonRuleService interface {
	GetActive(ctx context.Context) *models.ActiveRulesResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
