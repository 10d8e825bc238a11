package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// msgDatesTaken даты заняты параллельной заявкой между проверкой и вставкой
const msgDatesTaken = "Les dates sélectionnées viennent d'être réservées."

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	availability    AvailabilityChecker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		availability:    availability,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции;
// пересечение подтвержденных бронирований дополнительно запрещено ограничением в базе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: %s..%s, people=%d, admin=%v",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.Guest.NumberOfPeople, req.IsAdministrative)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Гость не может бронировать прошедшие даты
	if !req.IsAdministrative && isDateInPast(req.StartDate, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: start date %s is in the past", req.StartDate.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	reservation := &domain.Reservation{
		StartDate: domain.DateOnly(req.StartDate),
		EndDate:   domain.DateOnly(req.EndDate),
		Status:    initialStatus(req),
		Guest:     normalizeGuest(req.Guest),
	}

	var result *domain.Reservation

	// 3. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Пересечения (всегда) и разрыв с соседями (только для гостя)
		verdict, err := uc.availability.CheckAvailability(txCtx, reservation.StartDate, reservation.EndDate, req.IsAdministrative)
		if err != nil {
			uc.logger.Error("CreateReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !verdict.Valid {
			uc.logger.Warn("CreateReservation: dates not available: %s", verdict.Reason)
			return rejected(ErrDatesUnavailable, verdict.Reason)
		}

		// 3.2. Правила сезона применяются только к заявкам гостей
		if !req.IsAdministrative {
			verdict, err = uc.availability.ValidateBooking(txCtx, reservation.StartDate, reservation.EndDate)
			if err != nil {
				uc.logger.Error("CreateReservation: booking validation failed: %v", err)
				return fmt.Errorf("%w: booking validation: %v", ErrInternal, err)
			}
			if !verdict.Valid {
				uc.logger.Warn("CreateReservation: booking rules violated: %s", verdict.Reason)
				return rejected(ErrRulesViolated, verdict.Reason)
			}
		} else {
			uc.logger.Info("CreateReservation: administrative reservation, booking rules skipped")
		}

		// 3.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDatesTaken) {
				uc.logger.Warn("CreateReservation: dates taken by a concurrent reservation")
				return rejected(ErrDatesUnavailable, msgDatesTaken)
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s status=%s", result.ID, result.Status)
	return newResponse(result), nil
}

func normalizeGuest(g domain.Guest) domain.Guest {
	g.FirstName = strings.TrimSpace(g.FirstName)
	g.LastName = strings.TrimSpace(g.LastName)
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	g.Phone = strings.TrimSpace(g.Phone)
	g.Address = strings.TrimSpace(g.Address)
	g.Locality = strings.TrimSpace(g.Locality)
	g.City = strings.TrimSpace(g.City)
	if g.Message != nil {
		msg := strings.TrimSpace(*g.Message)
		if msg == "" {
			g.Message = nil
		} else {
			g.Message = &msg
		}
	}
	return g
}
