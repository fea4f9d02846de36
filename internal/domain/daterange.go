package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange is returned for a range whose start >= end or
// with a missing boundary
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is a half-open date range [Start, End).
// End is exclusive: the range Jan 1 - Jan 3 covers the nights of Jan 1 and Jan 2.
// This is the single interval primitive of the service - every overlap check
// (seasonal rates, blackout dates, room occupancy) goes through it
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a validated date range.
// The time of day is zeroed out - the range operates on calendar days
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the start < end invariant
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: start %s must be before end %s",
			ErrInvalidDateRange, r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return nil
}

// Nights returns the number of nights in the range (end - start in whole days)
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect.
// Adjacent ranges (a.End == b.Start) do NOT overlap: a check-out and a
// check-in on the same day are two different nights
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// ContainsDate reports whether the date falls inside the range (Start <= d < End)
func (r DateRange) ContainsDate(d time.Time) bool {
	d = truncateToDay(d)
	return !d.Before(r.Start) && d.Before(r.End)
}

// EachNight returns every night of the range in order
func (r DateRange) EachNight() []time.Time {
	nights := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

// String renders the range as "2026-12-20/2026-12-31"
func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + "/" + r.End.Format(DateFormat)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
