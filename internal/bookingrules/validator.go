package bookingrules

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	msgMinimumStaySingular = "La durée minimum de séjour est de %d jour pour cette période."
	msgMinimumStayPlural   = "La durée minimum de séjour est de %d jours pour cette période."
	msgGapBefore           = "Il doit y avoir soit 0 jour (réservation consécutive), soit au moins %d jours entre les réservations en haute saison. (%d jours avant)"
	msgGapAfter            = "Il doit y avoir soit 0 jour (réservation consécutive), soit au moins %d jours entre les réservations en haute saison. (%d jours après)"
)

// Verdict is the outcome of a policy check. Reason is user-facing text.
type Verdict struct {
	Valid  bool
	Reason string
}

func Accepted() Verdict {
	return Verdict{Valid: true}
}

func Rejected(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// ValidateBooking checks the minimum stay and then the gap rule against the
// nearest approved reservations among existing. The range must already be validated.
func (e *Evaluator) ValidateBooking(start, end time.Time, existing []domain.Reservation) Verdict {
	durationDays := domain.DaysBetween(start, end) + 1

	requiredMinimumStay := e.RequiredMinimumStay(start, end)
	if durationDays < requiredMinimumStay {
		return Rejected(minimumStayReason(requiredMinimumStay))
	}

	approved := make([]domain.Reservation, 0, len(existing))
	for _, res := range existing {
		if res.IsApproved() {
			approved = append(approved, res)
		}
	}

	previous, next := Adjacent(approved, start, end)
	return e.CheckGap(start, end, previous, next)
}

func minimumStayReason(days int) string {
	if days > 1 {
		return fmt.Sprintf(msgMinimumStayPlural, days)
	}
	return fmt.Sprintf(msgMinimumStaySingular, days)
}
