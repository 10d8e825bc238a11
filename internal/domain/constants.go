package domain

// Default engine values
const (
	DefaultMinimumStayDays = 1

	// AdjacentLookupMonths окно поиска соседних бронирований (в месяцах до и после запроса).
	// Требуемый разрыв всегда заметно меньше месяца, поэтому одного месяца достаточно.
	AdjacentLookupMonths = 1

	// HighSeasonSampleStepDays шаг перебора дат внутри диапазона.
	// Шаг не больше 15 дней гарантирует, что проверяется каждый календарный месяц.
	HighSeasonSampleStepDays = 15
)

// Business validation constants
const (
	MinMonth               = 1
	MaxMonth               = 12
	MinMinimumStayDays     = 1
	MaxMinimumStayDays     = 365
	MinMinimumGapDays      = 0
	MaxMinimumGapDays      = 90
	MaxRuleNameLength      = 100
	MinNumberOfPeople      = 1
	MaxNumberOfPeople      = 50
	MaxMessageLength       = 2000
	MaxBlockedReasonLength = 500
	MinCalendarYear        = 1970
	MaxCalendarYear        = 2100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReservationStatuses список допустимых статусов бронирования
var ReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}
