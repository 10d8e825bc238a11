package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDateRange дата отъезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_reservation: end date must be after start date")

	// ErrDateInPast гость пытается забронировать прошедшие даты
	ErrDateInPast = errors.New("create_reservation: start date is in the past")

	// ErrDatesUnavailable даты заняты подтвержденным бронированием или блокировкой
	ErrDatesUnavailable = errors.New("create_reservation: dates are not available")

	// ErrRulesViolated бронирование не проходит правила минимальной длительности или разрыва
	ErrRulesViolated = errors.New("create_reservation: booking rules violated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// RejectionError отказ по правилам с текстом для гостя.
// errors.Is сопоставляет его с ErrDatesUnavailable или ErrRulesViolated.
type RejectionError struct {
	Reason string
	kind   error
}

func (e *RejectionError) Error() string {
	return e.kind.Error() + ": " + e.Reason
}

func (e *RejectionError) Unwrap() error {
	return e.kind
}

// NewRejectionError создает отказ вида kind (ErrDatesUnavailable или ErrRulesViolated)
func NewRejectionError(kind error, reason string) *RejectionError {
	return &RejectionError{Reason: reason, kind: kind}
}

func rejected(kind error, reason string) error {
	return NewRejectionError(kind, reason)
}
