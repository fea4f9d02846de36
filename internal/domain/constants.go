package domain

// Monetary constants
const (
	// TaxRatePercent is the VAT rate applied to the post-discount amount
	TaxRatePercent = 7.0

	// DepositRatePercent is the deposit share of the total with tax
	DepositRatePercent = 30.0
)

// Business validation constants
const (
	MinGuests                   = 1
	MaxGuests                   = 20
	MaxStayNights               = 365
	MaxGroupRooms               = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReasonAlreadyBooked is the block reason for a night held by another booking
const ReasonAlreadyBooked = "room is already booked"

// OccupyingStatuses are the booking statuses that keep their nights occupied.
// Used when selecting occupied intervals for availability checks
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// InactiveStatuses are the booking statuses that have released their nights
var InactiveStatuses = []BookingStatus{
	StatusCancelledByGuest,
	StatusCancelledByProperty,
	StatusNoShow,
}
