package domain

import "time"

// RestrictionSource identifies the configuration collection a restriction came from
type RestrictionSource string

const (
	SourceBlackout    RestrictionSource = "blackout"
	SourceMaintenance RestrictionSource = "maintenance"
)

// Restriction is a normalized availability constraint produced by blackout
// dates and maintenance schedules.
// AllowBooking=false is an absolute veto for the covered nights regardless
// of any pricing configuration
type Restriction struct {
	ID           int64
	Scope        RoomScope
	Dates        DateRange
	AllowBooking bool
	MinStay      int // 0 = no minimum imposed
	MaxStay      int // 0 = no maximum imposed
	Reason       string
	Source       RestrictionSource
}

// BlockReason returns the human-readable reason for blocking a night.
// Falls back to a per-source default when the stored reason is empty
func (r *Restriction) BlockReason() string {
	if r.Reason != "" {
		return r.Reason
	}
	switch r.Source {
	case SourceMaintenance:
		return "room closed for maintenance"
	default:
		return "blackout period"
	}
}

// AvailabilityResult is the authoritative answer to "can this stay be booked".
// It carries the full set of blocked nights so callers can render an
// availability calendar, not just a yes/no
type AvailabilityResult struct {
	Available        bool
	UnavailableDates []time.Time       // sorted ascending
	Reasons          map[string]string // date (YYYY-MM-DD) -> reason for the first block found
	StayViolation    string            // min/max-stay violation for the requested length, "" = none
}
