package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// StatusAll значение фильтра, означающее все статусы
const StatusAll = "all"

// ReservationResponse бронирование для администратора
type ReservationResponse struct {
	ID             string    `json:"id"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Status         string    `json:"status"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Locality       string    `json:"locality"`
	City           string    `json:"city"`
	NumberOfPeople int       `json:"numberOfPeople"`
	Message        *string   `json:"message,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную модель в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:             r.ID,
		StartDate:      r.StartDate.Format(domain.DateFormat),
		EndDate:        r.EndDate.Format(domain.DateFormat),
		Status:         string(r.Status),
		FirstName:      r.Guest.FirstName,
		LastName:       r.Guest.LastName,
		Email:          r.Guest.Email,
		Phone:          r.Guest.Phone,
		Address:        r.Guest.Address,
		Locality:       r.Guest.Locality,
		City:           r.Guest.City,
		NumberOfPeople: r.Guest.NumberOfPeople,
		Message:        r.Guest.Message,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список
func FromDomainReservationList(list []domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for i := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(&list[i]))
	}
	return resp
}

// ToDomainFilter разбирает фильтр статуса ("all", пусто или конкретный статус)
func ToDomainFilter(status string) (domain.ReservationsFilter, error) {
	if status == "" || status == StatusAll {
		return domain.ReservationsFilter{}, nil
	}
	parsed, err := domain.ParseReservationStatus(status)
	if err != nil {
		return domain.ReservationsFilter{}, err
	}
	return domain.ReservationsFilter{Status: &parsed}, nil
}
