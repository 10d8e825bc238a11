package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/bookingrules"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// AvailabilityChecker проверка пересечений и правил бронирования
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, start, end time.Time, isAdministrative bool) (bookingrules.Verdict, error)
	ValidateBooking(ctx context.Context, start, end time.Time) (bookingrules.Verdict, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
