package bookingrules

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// GapDays returns the number of empty days between a stay ending on earlierEnd
// and a stay starting on laterStart. Back-to-back stays (laterStart = earlierEnd + 1) give 0.
func GapDays(earlierEnd, laterStart time.Time) int {
	gap := domain.DaysBetween(earlierEnd, laterStart) - 1
	if gap < 0 {
		return 0
	}
	return gap
}

// Adjacent finds the nearest reservation ending strictly before start
// and the nearest one starting strictly after end.
func Adjacent(reservations []domain.Reservation, start, end time.Time) (previous, next *domain.Reservation) {
	start, end = domain.DateOnly(start), domain.DateOnly(end)

	for i := range reservations {
		res := &reservations[i]
		resStart, resEnd := domain.DateOnly(res.StartDate), domain.DateOnly(res.EndDate)

		if resEnd.Before(start) {
			if previous == nil || resEnd.After(domain.DateOnly(previous.EndDate)) {
				previous = res
			}
		}
		if resStart.After(end) {
			if next == nil || resStart.Before(domain.DateOnly(next.StartDate)) {
				next = res
			}
		}
	}
	return previous, next
}

// CheckGap applies the gap rule against the neighbouring approved reservations.
// The gap must be either 0 (consecutive stays) or at least the required gap.
func (e *Evaluator) CheckGap(start, end time.Time, previous, next *domain.Reservation) Verdict {
	overlapsHighSeason := e.RangeOverlapsHighSeason(start, end)
	if !overlapsHighSeason {
		return Accepted()
	}

	requiredGap, ok := e.RequiredGapDays()
	if !ok {
		return Accepted()
	}

	if previous != nil {
		daysBefore := GapDays(previous.EndDate, start)
		previousInHighSeason := e.RangeOverlapsHighSeason(previous.StartDate, previous.EndDate)
		if daysBefore > 0 && daysBefore < requiredGap && (overlapsHighSeason || previousInHighSeason) {
			return Rejected(fmt.Sprintf(msgGapBefore, requiredGap, daysBefore))
		}
	}

	if next != nil {
		daysAfter := GapDays(end, next.StartDate)
		nextInHighSeason := e.RangeOverlapsHighSeason(next.StartDate, next.EndDate)
		if daysAfter > 0 && daysAfter < requiredGap && (overlapsHighSeason || nextInHighSeason) {
			return Rejected(fmt.Sprintf(msgGapAfter, requiredGap, daysAfter))
		}
	}

	return Accepted()
}
