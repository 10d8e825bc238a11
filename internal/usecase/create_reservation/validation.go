package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.EndDate).After(domain.DateOnly(req.StartDate)) {
		return ErrInvalidDateRange
	}

	if err := validateGuest(&req.Guest); err != nil {
		return err
	}

	// Начальный статус может задать только администратор
	if req.Status != nil && !req.IsAdministrative {
		return fmt.Errorf("%w: status can only be set by an administrator", ErrInvalidInput)
	}

	if req.Status != nil {
		if _, err := domain.ParseReservationStatus(*req.Status); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateGuest проверяет контактные данные гостя
func validateGuest(g *domain.Guest) error {
	required := map[string]string{
		"firstName": g.FirstName,
		"lastName":  g.LastName,
		"email":     g.Email,
		"phone":     g.Phone,
		"address":   g.Address,
		"locality":  g.Locality,
		"city":      g.City,
	}
	for _, field := range []string{"firstName", "lastName", "email", "phone", "address", "locality", "city"} {
		if strings.TrimSpace(required[field]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
	}

	if _, err := mail.ParseAddress(g.Email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}

	if g.NumberOfPeople < domain.MinNumberOfPeople || g.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be between %d and %d",
			ErrInvalidInput, domain.MinNumberOfPeople, domain.MaxNumberOfPeople)
	}

	if g.Message != nil && len(*g.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}

// initialStatus статус новой заявки
func initialStatus(req *Request) domain.ReservationStatus {
	if req.IsAdministrative && req.Status != nil {
		status, _ := domain.ParseReservationStatus(*req.Status)
		return status
	}
	return domain.StatusPending
}
