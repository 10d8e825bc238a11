package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// SeasonRuleRequest данные для создания или полной замены правила
type SeasonRuleRequest struct {
	Name                      string `json:"name"`
	IsActive                  *bool  `json:"isActive,omitempty"` // по умолчанию true
	IsHighSeason              bool   `json:"isHighSeason"`
	HighSeasonStartMonth      *int   `json:"highSeasonStartMonth,omitempty"` // 1-12, вместе с highSeasonEndMonth
	HighSeasonEndMonth        *int   `json:"highSeasonEndMonth,omitempty"`
	MinimumStayDays           *int   `json:"minimumStayDays,omitempty"` // по умолчанию 1
	EnforceGapBetweenBookings bool   `json:"enforceGapBetweenBookings"`
	MinimumGapDays            *int   `json:"minimumGapDays,omitempty"`
}

// ToDomain собирает доменное правило с подстановкой значений по умолчанию
func (r *SeasonRuleRequest) ToDomain(id string) *domain.SeasonRule {
	rule := &domain.SeasonRule{
		ID:                        id,
		Name:                      r.Name,
		Active:                    true,
		IsHighSeason:              r.IsHighSeason,
		HighSeasonStartMonth:      r.HighSeasonStartMonth,
		HighSeasonEndMonth:        r.HighSeasonEndMonth,
		MinimumStayDays:           domain.DefaultMinimumStayDays,
		EnforceGapBetweenBookings: r.EnforceGapBetweenBookings,
		MinimumGapDays:            r.MinimumGapDays,
	}
	if r.IsActive != nil {
		rule.Active = *r.IsActive
	}
	if r.MinimumStayDays != nil {
		rule.MinimumStayDays = *r.MinimumStayDays
	}
	return rule
}

// Response модели

// SeasonRuleResponse правило сезона
type SeasonRuleResponse struct {
	ID                        string     `json:"id"`
	Name                      string     `json:"name"`
	IsActive                  bool       `json:"isActive"`
	IsHighSeason              bool       `json:"isHighSeason"`
	HighSeasonStartMonth      *int       `json:"highSeasonStartMonth"`
	HighSeasonEndMonth        *int       `json:"highSeasonEndMonth"`
	MinimumStayDays           int        `json:"minimumStayDays"`
	EnforceGapBetweenBookings bool       `json:"enforceGapBetweenBookings"`
	MinimumGapDays            *int       `json:"minimumGapDays"`
	CreatedAt                 *time.Time `json:"createdAt,omitempty"` // нет у правил по умолчанию
	UpdatedAt                 *time.Time `json:"updatedAt,omitempty"`
}

// ActiveRulesResponse активные правила и их источник
type ActiveRulesResponse struct {
	Rules  []SeasonRuleResponse `json:"rules"`
	Source string               `json:"source"` // store, cache или default
}

// FromDomainSeasonRule конвертирует доменное правило в ответ
func FromDomainSeasonRule(r *domain.SeasonRule) *SeasonRuleResponse {
	resp := &SeasonRuleResponse{
		ID:                        r.ID,
		Name:                      r.Name,
		IsActive:                  r.Active,
		IsHighSeason:              r.IsHighSeason,
		HighSeasonStartMonth:      r.HighSeasonStartMonth,
		HighSeasonEndMonth:        r.HighSeasonEndMonth,
		MinimumStayDays:           r.MinimumStayDays,
		EnforceGapBetweenBookings: r.EnforceGapBetweenBookings,
		MinimumGapDays:            r.MinimumGapDays,
	}
	if !r.CreatedAt.IsZero() {
		createdAt := r.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !r.UpdatedAt.IsZero() {
		updatedAt := r.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromDomainSeasonRuleList конвертирует список правил
func FromDomainSeasonRuleList(rules []domain.SeasonRule) []SeasonRuleResponse {
	out := make([]SeasonRuleResponse, 0, len(rules))
	for i := range rules {
		out = append(out, *FromDomainSeasonRule(&rules[i]))
	}
	return out
}
