package blockeddates

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда блокировка не найдена
	ErrBlockedDateNotFound = errors.New("blockeddates: blocked date not found")

	// ErrInvalidDateRange дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("blockeddates: end date must be after start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blockeddates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blockeddates: internal error")
)
