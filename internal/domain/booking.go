package domain

import "time"

// BookingStatus represents the status of a room booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCheckedIn           BookingStatus = "checked_in"
	StatusCheckedOut          BookingStatus = "checked_out"
	StatusCancelledByGuest    BookingStatus = "cancelled_by_guest"
	StatusCancelledByProperty BookingStatus = "cancelled_by_property"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a room stay booking
type Booking struct {
	ID       int64
	UserID   int64
	RoomID   int64
	Stay     DateRange // [check-in, check-out)
	Guests   int
	PolicyID *int64 // cancellation policy attached at booking time

	// Denormalized pricing snapshot for history
	NightlyRate   float64
	TotalPrice    float64
	DepositAmount float64
	Notes         *string

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesRoom returns true if the booking blocks its nights for other guests
func (b *Booking) OccupiesRoom() bool {
	return StatusOccupies(b.Status)
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByGuest || b.Status == StatusCancelledByProperty
}

// StatusOccupies reports whether a booking in the given status occupies its room.
// Cancelled and no-show bookings release their nights
func StatusOccupies(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCheckedIn
}

// OccupiedInterval is the occupancy read model consumed by the availability
// evaluator: the nights a booking holds plus its status, nothing else
type OccupiedInterval struct {
	BookingID int64
	Dates     DateRange
	Status    BookingStatus
}

// RoomBookingsFilter narrows a room bookings listing
type RoomBookingsFilter struct {
	RoomID          int64
	StartDate       *time.Time     // period start, optional
	EndDate         *time.Time     // period end, optional
	Status          *BookingStatus // status filter, optional
	IncludeInactive bool           // include cancelled and no-show bookings
}
