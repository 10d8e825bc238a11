package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/bookingrules"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/rulecache"
	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

// Сообщения для гостя
const (
	msgDatesUnavailable = "Les dates sélectionnées ne sont pas disponibles."
)

// Service проверка доступности дат и правил бронирования
type Service struct {
	reservationRepo ReservationRepository
	blockedRepo     BlockedDateRepository
	rules           RuleProvider
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	reservationRepo ReservationRepository,
	blockedRepo BlockedDateRepository,
	rules RuleProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
		rules:           rules,
		metrics:         metrics,
		logger:          logger,
	}
}

// CheckAvailability проверяет, свободен ли диапазон.
// Шаг 1: пересечение с подтвержденными бронированиями и блокировками (всегда).
// Шаг 2: правило разрыва с соседними бронированиями (пропускается для администратора).
func (s *Service) CheckAvailability(ctx context.Context, start, end time.Time, isAdministrative bool) (bookingrules.Verdict, error) {
	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return bookingrules.Verdict{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	overlaps, err := s.hasOverlap(ctx, rng)
	if err != nil {
		return bookingrules.Verdict{}, err
	}
	if overlaps {
		s.logger.Info("CheckAvailability: %s..%s overlaps an approved reservation or blocked period",
			rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat))
		return bookingrules.Rejected(msgDatesUnavailable), nil
	}

	if isAdministrative {
		return bookingrules.Accepted(), nil
	}

	previous, next, err := s.adjacent(ctx, rng)
	if err != nil {
		return bookingrules.Verdict{}, err
	}

	evaluator := s.evaluator(ctx)
	verdict := evaluator.CheckGap(rng.Start, rng.End, previous, next)
	if !verdict.Valid {
		s.logger.Info("CheckAvailability: gap rule rejected %s..%s: %s",
			rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat), verdict.Reason)
	}
	return verdict, nil
}

// IsDateAvailable булева форма CheckAvailability
func (s *Service) IsDateAvailable(ctx context.Context, start, end time.Time, isAdministrative bool) (bool, error) {
	verdict, err := s.CheckAvailability(ctx, start, end, isAdministrative)
	if err != nil {
		return false, err
	}
	return verdict.Valid, nil
}

// ValidateBooking проверяет минимальную длительность и разрыв с соседними бронированиями.
// Пересечения не проверяются, для этого есть CheckAvailability.
func (s *Service) ValidateBooking(ctx context.Context, start, end time.Time) (bookingrules.Verdict, error) {
	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return bookingrules.Verdict{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	// Соседи ищутся в окне ±1 месяц: требуемый разрыв всегда меньше месяца
	window := rng.Extend(domain.AdjacentLookupMonths)
	existing, err := s.reservationRepo.FindApprovedOverlapping(ctx, window)
	if err != nil {
		s.logger.Error("ValidateBooking: failed to load reservations: %v", err)
		return bookingrules.Verdict{}, fmt.Errorf("%w: ValidateBooking - reservations: %v", ErrInternal, err)
	}

	verdict := s.evaluator(ctx).ValidateBooking(rng.Start, rng.End, existing)
	if s.metrics != nil {
		s.metrics.BookingVerdict(verdict.Valid)
	}
	if !verdict.Valid {
		s.logger.Warn("ValidateBooking: rejected %s..%s: %s",
			rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat), verdict.Reason)
	}
	return verdict, nil
}

// AvailableDates даты месяца, не занятые подтвержденными бронированиями и блокировками.
// Сезон и разрывы здесь не учитываются.
func (s *Service) AvailableDates(ctx context.Context, year, month int) ([]time.Time, error) {
	calendar, err := s.calendar(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return calendar.available, nil
}

// GetCalendar свободные даты месяца вместе с бронированиями и блокировками окна ±1 месяц
func (s *Service) GetCalendar(ctx context.Context, year, month int) (*models.CalendarResponse, error) {
	calendar, err := s.calendar(ctx, year, month)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetCalendar: %04d-%02d has %d available dates", year, month, len(calendar.available))
	return models.NewCalendarResponse(year, month, calendar.available, calendar.reservations, calendar.blocked), nil
}

type monthCalendar struct {
	available    []time.Time
	reservations []domain.Reservation
	blocked      []domain.BlockedDate
}

func (s *Service) calendar(ctx context.Context, year, month int) (*monthCalendar, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	first, last := domain.MonthBounds(year, time.Month(month))
	window := domain.DateRange{Start: first, End: last}.Extend(domain.AdjacentLookupMonths)

	reservations, err := s.reservationRepo.FindApprovedOverlapping(ctx, window)
	if err != nil {
		s.logger.Error("AvailableDates: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: AvailableDates - reservations: %v", ErrInternal, err)
	}

	blocked, err := s.blockedRepo.FindOverlapping(ctx, window)
	if err != nil {
		s.logger.Error("AvailableDates: failed to load blocked dates: %v", err)
		return nil, fmt.Errorf("%w: AvailableDates - blocked dates: %v", ErrInternal, err)
	}

	return &monthCalendar{
		available:    freeDays(first, last, reservations, blocked),
		reservations: reservations,
		blocked:      blocked,
	}, nil
}

// freeDays перечисляет дни [first, last], не покрытые ни одним диапазоном
func freeDays(first, last time.Time, reservations []domain.Reservation, blocked []domain.BlockedDate) []time.Time {
	taken := make([]domain.DateRange, 0, len(reservations)+len(blocked))
	for i := range reservations {
		if reservations[i].IsApproved() {
			taken = append(taken, reservations[i].Range())
		}
	}
	for i := range blocked {
		taken = append(taken, blocked[i].Range())
	}

	days := make([]time.Time, 0, 31)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		free := true
		for _, rng := range taken {
			if rng.ContainsDate(d) {
				free = false
				break
			}
		}
		if free {
			days = append(days, d)
		}
	}
	return days
}

func (s *Service) hasOverlap(ctx context.Context, rng domain.DateRange) (bool, error) {
	reservations, err := s.reservationRepo.FindApprovedOverlapping(ctx, rng)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to load reservations: %v", err)
		return false, fmt.Errorf("%w: CheckAvailability - reservations: %v", ErrInternal, err)
	}
	if len(reservations) > 0 {
		return true, nil
	}

	blocked, err := s.blockedRepo.FindOverlapping(ctx, rng)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to load blocked dates: %v", err)
		return false, fmt.Errorf("%w: CheckAvailability - blocked dates: %v", ErrInternal, err)
	}
	return len(blocked) > 0, nil
}

func (s *Service) adjacent(ctx context.Context, rng domain.DateRange) (previous, next *domain.Reservation, err error) {
	window := rng.Extend(domain.AdjacentLookupMonths)

	previous, err = s.reservationRepo.FindApprovedBefore(ctx, rng.Start, window.Start)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to load previous reservation: %v", err)
		return nil, nil, fmt.Errorf("%w: CheckAvailability - previous reservation: %v", ErrInternal, err)
	}

	next, err = s.reservationRepo.FindApprovedAfter(ctx, rng.End, window.End)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to load next reservation: %v", err)
		return nil, nil, fmt.Errorf("%w: CheckAvailability - next reservation: %v", ErrInternal, err)
	}
	return previous, next, nil
}

func (s *Service) evaluator(ctx context.Context) *bookingrules.Evaluator {
	rules, source := s.rules.Rules(ctx)
	if source == rulecache.SourceDefault {
		s.logger.Warn("booking rules: using built-in default rules")
	}
	return bookingrules.NewEvaluator(rules)
}

func validateMonth(year, month int) error {
	if month < domain.MinMonth || month > domain.MaxMonth {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return nil
}
