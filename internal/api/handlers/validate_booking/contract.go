package validate_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/bookingrules"
)

type BookingValidator interface {
	ValidateBooking(ctx context.Context, start, end time.Time) (bookingrules.Verdict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
