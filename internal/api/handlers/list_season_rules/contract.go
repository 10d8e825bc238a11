package list_season_rules

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

type SeasonRuleService interface {
	List(ctx context.Context) ([]models.SeasonRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
