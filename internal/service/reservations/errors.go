package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("reservations: invalid reservation status")

	// ErrDatesUnavailable подтверждение невозможно: даты заняты другим подтвержденным бронированием или блокировкой
	ErrDatesUnavailable = errors.New("reservations: dates are not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
