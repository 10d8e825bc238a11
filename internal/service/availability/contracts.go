package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rulecache"
)

// ReservationRepository чтение подтвержденных бронирований
type ReservationRepository interface {
	FindApprovedOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.Reservation, error)
	FindApprovedBefore(ctx context.Context, date, notBefore time.Time) (*domain.Reservation, error)
	FindApprovedAfter(ctx context.Context, date, notAfter time.Time) (*domain.Reservation, error)
}

// BlockedDateRepository чтение периодов блокировки
type BlockedDateRepository interface {
	FindOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedDate, error)
}

// RuleProvider источник активных правил сезона (кэш правил).
// Никогда не возвращает ошибку: при сбое хранилища отдаёт запасные правила.
type RuleProvider interface {
	Rules(ctx context.Context) ([]domain.SeasonRule, rulecache.Source)
}

// Metrics счётчики вердиктов (может быть nil)
type Metrics interface {
	BookingVerdict(valid bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
