package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	StartDate time.Time    // Дата заезда
	EndDate   time.Time    // Дата отъезда (включительно)
	Guest     domain.Guest // Контактные данные гостя

	// IsAdministrative заявка от администратора: без проверки правил сезона и разрыва
	IsAdministrative bool
	// Status начальный статус, доступен только администратору (по умолчанию pending)
	Status *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Status    string
	Guest     domain.Guest
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    string(r.Status),
		Guest:     r.Guest,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
