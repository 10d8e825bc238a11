package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	createReservation "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StartDate      string  `json:"startDate"` // "2025-07-14"
	EndDate        string  `json:"endDate"`   // включительно
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Locality       string  `json:"locality"`
	City           string  `json:"city"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Message        *string `json:"message,omitempty"`
	Status         *string `json:"status,omitempty"` // только для администратора
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             string  `json:"id"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Status         string  `json:"status"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Locality       string  `json:"locality"`
	City           string  `json:"city"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Message        *string `json:"message,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(isAdministrative bool) (*createReservation.Request, error) {
	rng := handlers.DateRangeRequest{StartDate: r.StartDate, EndDate: r.EndDate}
	start, end, err := rng.Parse()
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		StartDate: start,
		EndDate:   end,
		Guest: domain.Guest{
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Email:          r.Email,
			Phone:          r.Phone,
			Address:        r.Address,
			Locality:       r.Locality,
			City:           r.City,
			NumberOfPeople: r.NumberOfPeople,
			Message:        r.Message,
		},
		IsAdministrative: isAdministrative,
		Status:           r.Status,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		Status:         resp.Status,
		FirstName:      resp.Guest.FirstName,
		LastName:       resp.Guest.LastName,
		Email:          resp.Guest.Email,
		Phone:          resp.Guest.Phone,
		Address:        resp.Guest.Address,
		Locality:       resp.Guest.Locality,
		City:           resp.Guest.City,
		NumberOfPeople: resp.Guest.NumberOfPeople,
		Message:        resp.Guest.Message,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
