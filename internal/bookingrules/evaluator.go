package bookingrules

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Evaluator answers season questions for a fixed set of rules.
// Inactive rules are dropped on construction.
type Evaluator struct {
	rules []domain.SeasonRule
}

// NewEvaluator создает оценщик по снимку правил
func NewEvaluator(rules []domain.SeasonRule) *Evaluator {
	active := make([]domain.SeasonRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Active {
			active = append(active, rule)
		}
	}
	return &Evaluator{rules: active}
}

// Rules returns the active rules the evaluator works with
func (e *Evaluator) Rules() []domain.SeasonRule {
	return e.rules
}

// IsHighSeason returns true if the month of date is covered by any active high-season rule
func (e *Evaluator) IsHighSeason(date time.Time) bool {
	return e.isHighSeasonMonth(date.Month())
}

func (e *Evaluator) isHighSeasonMonth(m time.Month) bool {
	for i := range e.rules {
		if e.rules[i].CoversMonth(m) {
			return true
		}
	}
	return false
}

// RangeOverlapsHighSeason returns true if start, end or any month between them is high season.
// A long stay that transits a high-season month is treated as a high-season stay.
func (e *Evaluator) RangeOverlapsHighSeason(start, end time.Time) bool {
	if e.IsHighSeason(start) || e.IsHighSeason(end) {
		return true
	}

	last := domain.DateOnly(end)
	for current := domain.DateOnly(start); !current.After(last); current = current.AddDate(0, 0, domain.HighSeasonSampleStepDays) {
		if e.isHighSeasonMonth(current.Month()) {
			return true
		}
	}
	return false
}

// MinimumStayDays returns the strictest minimum stay among the rules of the season of date
func (e *Evaluator) MinimumStayDays(date time.Time) int {
	return e.maxMinimumStay(e.IsHighSeason(date))
}

// RequiredMinimumStay returns the minimum stay for a whole range:
// high-season rules if the range touches high season, low-season rules otherwise
func (e *Evaluator) RequiredMinimumStay(start, end time.Time) int {
	return e.maxMinimumStay(e.RangeOverlapsHighSeason(start, end))
}

func (e *Evaluator) maxMinimumStay(highSeason bool) int {
	minimumStay := 0
	for _, rule := range e.rules {
		if rule.IsHighSeason != highSeason {
			continue
		}
		if rule.MinimumStayDays > minimumStay {
			minimumStay = rule.MinimumStayDays
		}
	}
	if minimumStay < domain.DefaultMinimumStayDays {
		return domain.DefaultMinimumStayDays
	}
	return minimumStay
}

// RequiredGapDays returns the largest gap among active high-season rules enforcing one.
// ok is false when no rule enforces a gap.
func (e *Evaluator) RequiredGapDays() (days int, ok bool) {
	for i := range e.rules {
		gap, enforced := e.rules[i].RequiredGapDays()
		if !enforced {
			continue
		}
		if !ok || gap > days {
			days = gap
			ok = true
		}
	}
	return days, ok
}
