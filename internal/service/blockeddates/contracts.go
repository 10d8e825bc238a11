package blockeddates

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// BlockedDateRepository интерфейс репозитория блокировок
type BlockedDateRepository interface {
	Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	List(ctx context.Context) ([]domain.BlockedDate, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
