package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/bookingrules"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, start, end time.Time, isAdministrative bool) (bookingrules.Verdict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
