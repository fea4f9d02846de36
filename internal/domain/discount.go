package domain

// DiscountTier is a banded group-booking discount keyed by total room count.
// Exactly one tier ever applies to a group quote, tiers are never stacked
type DiscountTier struct {
	ID                 int64
	Name               string
	MinRooms           int
	MaxRooms           *int // nil = unbounded
	DiscountPercentage float64
}

// Matches returns true if the tier covers the given total room count
func (t *DiscountTier) Matches(totalRooms int) bool {
	if totalRooms < t.MinRooms {
		return false
	}
	if t.MaxRooms != nil && totalRooms > *t.MaxRooms {
		return false
	}
	return true
}

// GroupRoom is one line of a group booking request
type GroupRoom struct {
	RoomID    int64
	Quantity  int
	BasePrice float64
}

// RoomSubtotal is the resolved price of one group line, retained for display
type RoomSubtotal struct {
	RoomID        int64
	Quantity      int
	Nights        int
	PricePerNight float64
	Subtotal      float64 // per-night price * quantity * nights
}

// GroupQuote is the aggregate price of a multi-room booking.
// All intermediate monetary values are kept in the quote for display and
// audit, not just the final total
type GroupQuote struct {
	Rooms          []RoomSubtotal
	TotalRooms     int
	Nights         int
	Subtotal       float64
	AppliedTier    *DiscountTier // nil when no tier matched
	DiscountAmount float64
	TaxableAmount  float64 // subtotal - discount
	TaxAmount      float64 // 7% of the taxable amount
	TotalAmount    float64 // taxable + tax
	DepositAmount  float64 // 30% of the tax-inclusive total
}
