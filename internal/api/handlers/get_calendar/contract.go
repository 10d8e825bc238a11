package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, year, month int) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
