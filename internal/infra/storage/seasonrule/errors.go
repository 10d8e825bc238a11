package seasonrule

import "errors"

var (
	// ErrSeasonRuleNotFound возвращается, когда правило сезона не найдено
	ErrSeasonRuleNotFound = errors.New("seasonrule.repository: season rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seasonrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("seasonrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("seasonrule.repository: failed to scan row")
)
