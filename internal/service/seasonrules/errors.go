package seasonrules

import "errors"

var (
	// ErrSeasonRuleNotFound возвращается, когда правило не найдено
	ErrSeasonRuleNotFound = errors.New("seasonrules: season rule not found")

	// ErrInvalidInput возвращается при некорректных данных правила
	ErrInvalidInput = errors.New("seasonrules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("seasonrules: internal error")
)
