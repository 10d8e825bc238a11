package bookingrules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func date(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func highSeasonRule(start, end, minimumStay int, gap *int) domain.SeasonRule {
	return domain.SeasonRule{
		ID:                        "high",
		Active:                    true,
		IsHighSeason:              true,
		HighSeasonStartMonth:      intPtr(start),
		HighSeasonEndMonth:        intPtr(end),
		MinimumStayDays:           minimumStay,
		EnforceGapBetweenBookings: gap != nil,
		MinimumGapDays:            gap,
	}
}

func lowSeasonRule(minimumStay int) domain.SeasonRule {
	return domain.SeasonRule{ID: "low", Active: true, MinimumStayDays: minimumStay}
}

func TestEvaluator_IsHighSeason(t *testing.T) {
	t.Run("plain range for any year", func(t *testing.T) {
		e := NewEvaluator([]domain.SeasonRule{highSeasonRule(7, 9, 7, nil)})
		for _, year := range []int{2019, 2024, 2031} {
			for m := time.January; m <= time.December; m++ {
				d := time.Date(year, m, 10, 0, 0, 0, 0, time.UTC)
				expected := m >= time.July && m <= time.September
				assert.Equal(t, expected, e.IsHighSeason(d), "%d-%s", year, m)
			}
		}
	})

	t.Run("wrapping range", func(t *testing.T) {
		e := NewEvaluator([]domain.SeasonRule{highSeasonRule(11, 2, 7, nil)})
		for m := time.January; m <= time.December; m++ {
			expected := m == time.November || m == time.December || m == time.January || m == time.February
			assert.Equal(t, expected, e.IsHighSeason(date(m, 1)), m.String())
		}
	})

	t.Run("inactive rules are ignored", func(t *testing.T) {
		rule := highSeasonRule(7, 9, 7, nil)
		rule.Active = false
		e := NewEvaluator([]domain.SeasonRule{rule})
		assert.False(t, e.IsHighSeason(date(time.August, 1)))
	})

	t.Run("overlapping rules union their coverage", func(t *testing.T) {
		e := NewEvaluator([]domain.SeasonRule{highSeasonRule(6, 7, 7, nil), highSeasonRule(7, 8, 5, nil)})
		assert.True(t, e.IsHighSeason(date(time.June, 1)))
		assert.True(t, e.IsHighSeason(date(time.August, 31)))
		assert.False(t, e.IsHighSeason(date(time.September, 1)))
	})
}

func TestEvaluator_RangeOverlapsHighSeason(t *testing.T) {
	e := NewEvaluator([]domain.SeasonRule{highSeasonRule(7, 7, 7, nil)})

	assert.True(t, e.RangeOverlapsHighSeason(date(time.June, 25), date(time.July, 2)))
	assert.True(t, e.RangeOverlapsHighSeason(date(time.July, 31), date(time.August, 10)))
	// транзит через июль
	assert.True(t, e.RangeOverlapsHighSeason(date(time.June, 30), date(time.August, 1)))
	assert.False(t, e.RangeOverlapsHighSeason(date(time.May, 1), date(time.June, 30)))
	assert.False(t, e.RangeOverlapsHighSeason(date(time.August, 1), date(time.September, 1)))
}

func TestEvaluator_MinimumStayDays(t *testing.T) {
	t.Run("strictest rule of the season wins", func(t *testing.T) {
		e := NewEvaluator([]domain.SeasonRule{
			highSeasonRule(7, 9, 5, nil),
			highSeasonRule(7, 9, 10, nil),
			lowSeasonRule(2),
			lowSeasonRule(3),
		})
		assert.Equal(t, 10, e.MinimumStayDays(date(time.August, 1)))
		assert.Equal(t, 3, e.MinimumStayDays(date(time.March, 1)))
	})

	t.Run("no rules default to one day", func(t *testing.T) {
		e := NewEvaluator(nil)
		assert.Equal(t, 1, e.MinimumStayDays(date(time.August, 1)))
		_, ok := e.RequiredGapDays()
		assert.False(t, ok)
	})

	t.Run("no low season rule defaults to one day", func(t *testing.T) {
		e := NewEvaluator([]domain.SeasonRule{highSeasonRule(7, 9, 7, nil)})
		assert.Equal(t, 1, e.MinimumStayDays(date(time.March, 1)))
	})
}

func TestEvaluator_RequiredGapDays(t *testing.T) {
	withoutMonths := domain.SeasonRule{Active: true, IsHighSeason: true, EnforceGapBetweenBookings: true, MinimumGapDays: intPtr(10)}
	e := NewEvaluator([]domain.SeasonRule{
		highSeasonRule(7, 9, 7, intPtr(3)),
		highSeasonRule(7, 9, 7, intPtr(7)),
		withoutMonths,
		lowSeasonRule(1),
	})
	gap, ok := e.RequiredGapDays()
	assert.True(t, ok)
	assert.Equal(t, 10, gap)
}
