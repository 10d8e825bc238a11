package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("domain: end date must be after start date")

// DateRange is an inclusive range of calendar days [Start, End].
// Both bounds are normalized to midnight UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalizes both dates and requires End to be strictly after Start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	dr := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// Validate returns ErrInvalidDateRange if either bound is missing or End is not after Start.
func (dr DateRange) Validate() error {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ErrInvalidDateRange
	}
	if !dr.End.After(dr.Start) {
		return ErrInvalidDateRange
	}
	return nil
}

// DurationDays returns the length of stay counting both endpoints.
func (dr DateRange) DurationDays() int {
	return DaysBetween(dr.Start, dr.End) + 1
}

// Overlaps reports whether the two ranges share at least one day.
func (dr DateRange) Overlaps(other DateRange) bool {
	return !DateOnly(dr.Start).After(DateOnly(other.End)) &&
		!DateOnly(dr.End).Before(DateOnly(other.Start))
}

// ContainsDate reports whether the day of t lies within the range.
func (dr DateRange) ContainsDate(t time.Time) bool {
	day := DateOnly(t)
	return !day.Before(DateOnly(dr.Start)) && !day.After(DateOnly(dr.End))
}

// Extend widens the range by the given number of months on both sides.
func (dr DateRange) Extend(months int) DateRange {
	return DateRange{
		Start: DateOnly(dr.Start).AddDate(0, -months, 0),
		End:   DateOnly(dr.End).AddDate(0, months, 0),
	}
}

// DateOnly strips the time of day, keeping the calendar day of t as seen in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// MonthBounds returns the first and the last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
