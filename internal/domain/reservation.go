package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the status of a reservation request
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusRejected ReservationStatus = "rejected"
)

// ParseReservationStatus converts a raw string into a known status
func ParseReservationStatus(s string) (ReservationStatus, error) {
	for _, status := range ReservationStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

// Guest holds the contact details of the person requesting the stay
type Guest struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	Locality       string
	City           string
	NumberOfPeople int
	Message        *string
}

// Reservation represents a stay request for the apartment
type Reservation struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus
	Guest     Guest

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the reservation days as an inclusive range
func (r *Reservation) Range() DateRange {
	return DateRange{Start: DateOnly(r.StartDate), End: DateOnly(r.EndDate)}
}

// IsApproved returns true if the reservation takes part in availability computations
func (r *Reservation) IsApproved() bool {
	return r.Status == StatusApproved
}

// BlockedDate is a period closed by the owner. It only removes days from availability.
type BlockedDate struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
	CreatedAt time.Time
}

// Range returns the blocked days as an inclusive range
func (b *BlockedDate) Range() DateRange {
	return DateRange{Start: DateOnly(b.StartDate), End: DateOnly(b.EndDate)}
}

// ReservationsFilter фильтр для получения списка бронирований
type ReservationsFilter struct {
	Status *ReservationStatus // nil = все статусы
	Period *DateRange         // nil = без ограничения по датам
}
