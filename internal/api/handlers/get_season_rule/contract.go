package get_season_rule

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/seasonrules/models"
)

type SeasonRuleService interface {
	GetByID(ctx context.Context, id string) (*models.SeasonRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
