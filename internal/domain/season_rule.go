package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonthRange = errors.New("domain: invalid month range")

// MonthRange is an inclusive range of months that may wrap around the year boundary.
// Start > End means the range spans December to January (e.g. 11..2).
type MonthRange struct {
	Start time.Month
	End   time.Month
}

// NewMonthRange validates both months (1-12).
func NewMonthRange(start, end int) (MonthRange, error) {
	if start < MinMonth || start > MaxMonth || end < MinMonth || end > MaxMonth {
		return MonthRange{}, fmt.Errorf("%w: %d..%d", ErrInvalidMonthRange, start, end)
	}
	return MonthRange{Start: time.Month(start), End: time.Month(end)}, nil
}

// Wraps returns true if the range crosses the year boundary
func (r MonthRange) Wraps() bool {
	return r.Start > r.End
}

// Contains reports whether month m belongs to the range
func (r MonthRange) Contains(m time.Month) bool {
	if r.Wraps() {
		return m >= r.Start || m <= r.End
	}
	return m >= r.Start && m <= r.End
}

// Months lists the months covered by the range in calendar order starting from Start
func (r MonthRange) Months() []time.Month {
	months := make([]time.Month, 0, MaxMonth)
	for m := r.Start; ; m = m%MaxMonth + 1 {
		months = append(months, m)
		if m == r.End {
			break
		}
	}
	return months
}

// SeasonRule represents a booking policy for the high or the low season
type SeasonRule struct {
	ID                        string
	Name                      string
	Active                    bool
	IsHighSeason              bool
	HighSeasonStartMonth      *int // NULL вместе с HighSeasonEndMonth
	HighSeasonEndMonth        *int
	MinimumStayDays           int
	EnforceGapBetweenBookings bool
	MinimumGapDays            *int // NULL = разрыв не задан
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// MonthRange returns the high-season month range if both boundary months are set
func (r *SeasonRule) MonthRange() (MonthRange, bool) {
	if r.HighSeasonStartMonth == nil || r.HighSeasonEndMonth == nil {
		return MonthRange{}, false
	}
	mr, err := NewMonthRange(*r.HighSeasonStartMonth, *r.HighSeasonEndMonth)
	if err != nil {
		return MonthRange{}, false
	}
	return mr, true
}

// CoversMonth returns true if this is an active high-season rule whose range contains m.
// A rule without boundary months never matches.
func (r *SeasonRule) CoversMonth(m time.Month) bool {
	if !r.Active || !r.IsHighSeason {
		return false
	}
	mr, ok := r.MonthRange()
	if !ok {
		return false
	}
	return mr.Contains(m)
}

// RequiredGapDays returns the minimum gap enforced by this rule, if any
func (r *SeasonRule) RequiredGapDays() (int, bool) {
	if !r.Active || !r.IsHighSeason || !r.EnforceGapBetweenBookings || r.MinimumGapDays == nil {
		return 0, false
	}
	return *r.MinimumGapDays, true
}

// DefaultSeasonRules returns the built-in policy used when the rule store is unavailable:
// high season July-September with a 7-day minimum stay and a 7-day gap,
// low season with a 1-day minimum stay and no gap.
func DefaultSeasonRules() []SeasonRule {
	highStart, highEnd, gap := 7, 9, 7
	return []SeasonRule{
		{
			ID:                        "high-season-default",
			Name:                      "Règle Haute Saison (Par défaut)",
			Active:                    true,
			IsHighSeason:              true,
			HighSeasonStartMonth:      &highStart,
			HighSeasonEndMonth:        &highEnd,
			MinimumStayDays:           7,
			EnforceGapBetweenBookings: true,
			MinimumGapDays:            &gap,
		},
		{
			ID:              "low-season-default",
			Name:            "Règle Basse Saison (Par défaut)",
			Active:          true,
			IsHighSeason:    false,
			MinimumStayDays: 1,
		},
	}
}
