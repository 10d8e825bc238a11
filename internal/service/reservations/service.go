package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// Service сервис управления бронированиями (для администратора)
type Service struct {
	reservationRepo ReservationRepository
	blockedRepo     BlockedDateRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	blockedRepo BlockedDateRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List возвращает бронирования, отфильтрованные по статусу ("all" или пусто = все)
func (s *Service) List(ctx context.Context, status string) (*models.ReservationListResponse, error) {
	filter, err := models.ToDomainFilter(status)
	if err != nil {
		s.logger.Warn("List: invalid status filter=%q", status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations (status=%q)", len(list), status)
	return models.FromDomainReservationList(list), nil
}

// UpdateStatus меняет статус бронирования.
// Перед подтверждением повторно проверяет, что даты не заняты другим
// подтвержденным бронированием или блокировкой.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.ReservationResponse, error) {
	newStatus, err := domain.ParseReservationStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for reservation id=%s", status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	var updated *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get reservation: %v", ErrInternal, err)
		}

		if newStatus == domain.StatusApproved && !current.IsApproved() {
			if err := s.ensureDatesFree(txCtx, current); err != nil {
				return err
			}
		}

		updated, err = s.reservationRepo.UpdateStatus(txCtx, id, newStatus)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			case errors.Is(err, reservationRepo.ErrDatesTaken):
				return ErrDatesUnavailable
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
		case errors.Is(err, ErrDatesUnavailable):
			s.logger.Warn("UpdateStatus: cannot approve reservation id=%s, dates are taken", id)
		default:
			s.logger.Error("UpdateStatus: reservation id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%s is now %s", id, newStatus)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

func (s *Service) ensureDatesFree(ctx context.Context, reservation *domain.Reservation) error {
	rng := reservation.Range()

	others, err := s.reservationRepo.FindApprovedOverlappingExcept(ctx, rng, reservation.ID)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - overlapping reservations: %v", ErrInternal, err)
	}
	if len(others) > 0 {
		return ErrDatesUnavailable
	}

	blocked, err := s.blockedRepo.FindOverlapping(ctx, rng)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - blocked dates: %v", ErrInternal, err)
	}
	if len(blocked) > 0 {
		return ErrDatesUnavailable
	}
	return nil
}
