package availability

import "errors"

var (
	// ErrInvalidDateRange дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("availability: end date must be after start date")

	// ErrInvalidMonth месяц вне диапазона 1..12
	ErrInvalidMonth = errors.New("availability: month must be between 1 and 12")

	// ErrInvalidYear год вне допустимого диапазона
	ErrInvalidYear = errors.New("availability: year out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
