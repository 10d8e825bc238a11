package create_blocked_date

import (
	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/blockeddates/models"
)

// CreateBlockedDateRequest HTTP request model
type CreateBlockedDateRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedDateRequest) ToServiceRequest() (*models.CreateBlockedDateRequest, error) {
	rng := handlers.DateRangeRequest{StartDate: r.StartDate, EndDate: r.EndDate}
	start, end, err := rng.Parse()
	if err != nil {
		return nil, err
	}
	return &models.CreateBlockedDateRequest{StartDate: start, EndDate: end, Reason: r.Reason}, nil
}
