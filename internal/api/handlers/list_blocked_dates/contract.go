package list_blocked_dates

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates/models"
)

type BlockedDateService interface {
	List(ctx context.Context) ([]models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
