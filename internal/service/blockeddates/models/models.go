package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CreateBlockedDateRequest запрос на блокировку периода
type CreateBlockedDateRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

// BlockedDateResponse период блокировки
type BlockedDateResponse struct {
	ID        string    `json:"id"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBlockedDate конвертирует доменную модель в ответ
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        b.ID,
		StartDate: b.StartDate.Format(domain.DateFormat),
		EndDate:   b.EndDate.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedDateList конвертирует список
func FromDomainBlockedDateList(list []domain.BlockedDate) []BlockedDateResponse {
	out := make([]BlockedDateResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromDomainBlockedDate(&list[i]))
	}
	return out
}
