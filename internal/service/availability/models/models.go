package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CalendarResponse календарь месяца
type CalendarResponse struct {
	Year           int                   `json:"year"`
	Month          int                   `json:"month"`
	AvailableDates []string              `json:"availableDates"`
	Reservations   []CalendarReservation `json:"reservations"`
	BlockedDates   []CalendarBlockedDate `json:"blockedDates"`
}

// CalendarReservation подтвержденное бронирование без персональных данных гостя
type CalendarReservation struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CalendarBlockedDate период блокировки
type CalendarBlockedDate struct {
	ID        string  `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// NewCalendarResponse собирает ответ календаря из доменных данных
func NewCalendarResponse(year, month int, available []time.Time, reservations []domain.Reservation, blocked []domain.BlockedDate) *CalendarResponse {
	resp := &CalendarResponse{
		Year:           year,
		Month:          month,
		AvailableDates: make([]string, 0, len(available)),
		Reservations:   make([]CalendarReservation, 0, len(reservations)),
		BlockedDates:   make([]CalendarBlockedDate, 0, len(blocked)),
	}

	for _, d := range available {
		resp.AvailableDates = append(resp.AvailableDates, d.Format(domain.DateFormat))
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, CalendarReservation{
			ID:        r.ID,
			StartDate: r.StartDate.Format(domain.DateFormat),
			EndDate:   r.EndDate.Format(domain.DateFormat),
		})
	}
	for _, b := range blocked {
		resp.BlockedDates = append(resp.BlockedDates, CalendarBlockedDate{
			ID:        b.ID,
			StartDate: b.StartDate.Format(domain.DateFormat),
			EndDate:   b.EndDate.Format(domain.DateFormat),
			Reason:    b.Reason,
		})
	}
	return resp
}
