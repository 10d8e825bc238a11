package bookingrules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func approved(id string, start, end time.Time) domain.Reservation {
	return domain.Reservation{ID: id, StartDate: start, EndDate: end, Status: domain.StatusApproved}
}

func TestGapDays(t *testing.T) {
	assert.Equal(t, 0, GapDays(date(time.July, 10), date(time.July, 11)))
	assert.Equal(t, 2, GapDays(date(time.July, 10), date(time.July, 13)))
	assert.Equal(t, 7, GapDays(date(time.July, 10), date(time.July, 18)))
	assert.Equal(t, 0, GapDays(date(time.July, 10), date(time.July, 10)))
}

func TestAdjacent(t *testing.T) {
	reservations := []domain.Reservation{
		approved("far-before", date(time.June, 1), date(time.June, 5)),
		approved("before", date(time.June, 20), date(time.June, 28)),
		approved("after", date(time.July, 20), date(time.July, 25)),
		approved("far-after", date(time.August, 1), date(time.August, 5)),
	}

	previous, next := Adjacent(reservations, date(time.July, 1), date(time.July, 10))
	if assert.NotNil(t, previous) {
		assert.Equal(t, "before", previous.ID)
	}
	if assert.NotNil(t, next) {
		assert.Equal(t, "after", next.ID)
	}

	previous, next = Adjacent(nil, date(time.July, 1), date(time.July, 10))
	assert.Nil(t, previous)
	assert.Nil(t, next)
}

func TestValidateBooking_MinimumStay(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())

	verdict := e.ValidateBooking(date(time.July, 1), date(time.July, 7), nil)
	assert.True(t, verdict.Valid)

	verdict = e.ValidateBooking(date(time.July, 1), date(time.July, 6), nil)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Reason, "7")

	// низкий сезон: минимум 1 день
	verdict = e.ValidateBooking(date(time.March, 1), date(time.March, 2), nil)
	assert.True(t, verdict.Valid)
}

func TestValidateBooking_MinimumStayAcrossSeasonBoundary(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())

	verdict := e.ValidateBooking(date(time.June, 28), date(time.July, 2), nil)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Reason, "7 jours")
}

func TestValidateBooking_Gap(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())
	existing := []domain.Reservation{approved("r1", date(time.July, 3), date(time.July, 10))}

	tests := []struct {
		name  string
		start time.Time
		valid bool
	}{
		{"consecutive stay", date(time.July, 11), true},
		{"two day gap", date(time.July, 13), false},
		{"six day gap", date(time.July, 17), false},
		{"seven day gap", date(time.July, 18), true},
		{"long gap", date(time.July, 30), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verdict := e.ValidateBooking(tc.start, tc.start.AddDate(0, 0, 7), existing)
			assert.Equal(t, tc.valid, verdict.Valid, verdict.Reason)
			if !tc.valid {
				assert.Contains(t, verdict.Reason, "7 jours")
				assert.Contains(t, verdict.Reason, "avant")
			}
		})
	}
}

func TestValidateBooking_GapAfter(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())
	existing := []domain.Reservation{approved("r1", date(time.August, 20), date(time.August, 27))}

	verdict := e.ValidateBooking(date(time.August, 10), date(time.August, 19), existing)
	assert.True(t, verdict.Valid)

	verdict = e.ValidateBooking(date(time.August, 8), date(time.August, 17), existing)
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Reason, "(2 jours après)")
}

func TestValidateBooking_IgnoresNonApproved(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())
	pending := approved("p1", date(time.July, 3), date(time.July, 10))
	pending.Status = domain.StatusPending
	rejected := approved("x1", date(time.July, 3), date(time.July, 10))
	rejected.Status = domain.StatusRejected

	verdict := e.ValidateBooking(date(time.July, 13), date(time.July, 20), []domain.Reservation{pending, rejected})
	assert.True(t, verdict.Valid)
}

func TestValidateBooking_LowSeasonHasNoGap(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())
	existing := []domain.Reservation{approved("r1", date(time.March, 1), date(time.March, 5))}

	verdict := e.ValidateBooking(date(time.March, 7), date(time.March, 8), existing)
	assert.True(t, verdict.Valid)
}

func TestValidateBooking_NoRules(t *testing.T) {
	e := NewEvaluator(nil)
	existing := []domain.Reservation{approved("r1", date(time.July, 3), date(time.July, 10))}

	verdict := e.ValidateBooking(date(time.July, 12), date(time.July, 13), existing)
	assert.True(t, verdict.Valid)
}

func TestValidateBooking_Idempotent(t *testing.T) {
	e := NewEvaluator(domain.DefaultSeasonRules())
	existing := []domain.Reservation{approved("r1", date(time.July, 3), date(time.July, 10))}

	first := e.ValidateBooking(date(time.July, 13), date(time.July, 20), existing)
	second := e.ValidateBooking(date(time.July, 13), date(time.July, 20), existing)
	assert.Equal(t, first, second)
}

func TestCheckGap_PreviousInHighSeason(t *testing.T) {
	// Правило с разрывом, но новый диапазон в низком сезоне: ограничение не применяется
	e := NewEvaluator([]domain.SeasonRule{highSeasonRule(7, 7, 7, intPtr(7))})
	previous := approved("r1", date(time.July, 20), date(time.July, 31))

	verdict := e.CheckGap(date(time.August, 3), date(time.August, 10), &previous, nil)
	assert.True(t, verdict.Valid)
}
