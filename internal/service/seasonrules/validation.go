package seasonrules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRule проверяет правило перед сохранением
func validateRule(rule *domain.SeasonRule) error {
	name := strings.TrimSpace(rule.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxRuleNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxRuleNameLength)
	}
	rule.Name = name

	// Месяцы задаются парой или не задаются вовсе
	if (rule.HighSeasonStartMonth == nil) != (rule.HighSeasonEndMonth == nil) {
		return fmt.Errorf("%w: highSeasonStartMonth and highSeasonEndMonth must be set together", ErrInvalidInput)
	}
	if rule.HighSeasonStartMonth != nil {
		if _, err := domain.NewMonthRange(*rule.HighSeasonStartMonth, *rule.HighSeasonEndMonth); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if rule.MinimumStayDays < domain.MinMinimumStayDays || rule.MinimumStayDays > domain.MaxMinimumStayDays {
		return fmt.Errorf("%w: minimumStayDays must be between %d and %d",
			ErrInvalidInput, domain.MinMinimumStayDays, domain.MaxMinimumStayDays)
	}

	if rule.MinimumGapDays != nil {
		gap := *rule.MinimumGapDays
		if gap < domain.MinMinimumGapDays || gap > domain.MaxMinimumGapDays {
			return fmt.Errorf("%w: minimumGapDays must be between %d and %d",
				ErrInvalidInput, domain.MinMinimumGapDays, domain.MaxMinimumGapDays)
		}
	}

	return nil
}
