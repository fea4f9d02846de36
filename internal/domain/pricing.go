package domain

import "time"

// RuleStrategy describes how a pricing rule modifies the running price
type RuleStrategy string

const (
	StrategyPercentage  RuleStrategy = "percentage"   // price += price * value / 100
	StrategyFixedAmount RuleStrategy = "fixed_amount" // price += value
	StrategyMultiplier  RuleStrategy = "multiplier"   // price *= value
)

// RuleSource identifies the configuration collection a rule came from
type RuleSource string

const (
	SourceSeasonal RuleSource = "seasonal"
	SourceDemand   RuleSource = "demand"
	SourceHoliday  RuleSource = "holiday"
)

// RoomScope is the set of room IDs a rule applies to.
// An empty scope means the rule applies to every room.
type RoomScope []int64

// AppliesTo returns true if the scope includes the given room
func (s RoomScope) AppliesTo(roomID int64) bool {
	if len(s) == 0 {
		return true
	}
	for _, id := range s {
		if id == roomID {
			return true
		}
	}
	return false
}

// PricingRule is a normalized pricing adjustment from one of the rule sources
// (seasonal pricing, demand levels, holiday calendar)
type PricingRule struct {
	ID                 int64
	Scope              RoomScope
	Dates              DateRange
	Priority           int
	Strategy           RuleStrategy
	Value              float64
	MinStay            int // 0 = no minimum imposed by this rule
	AdvanceBookingDays int // 0 = no advance-booking requirement
	Source             RuleSource
	CreatedAt          time.Time
}

// IsValid reports whether the rule is well-formed enough to participate in
// price resolution. Malformed rules are skipped, never guessed at
func (r *PricingRule) IsValid() bool {
	if r.Dates.Validate() != nil {
		return false
	}
	switch r.Strategy {
	case StrategyPercentage, StrategyFixedAmount:
		return true
	case StrategyMultiplier:
		return r.Value >= 0
	default:
		return false
	}
}

// RuleApplication records a single rule's contribution to a resolved price.
// Kept for auditability: callers can show the customer exactly how the
// nightly price was built up
type RuleApplication struct {
	RuleID      int64
	Source      RuleSource
	Strategy    RuleStrategy
	Value       float64
	Date        time.Time
	PriceBefore float64
	PriceAfter  float64
}

// NightPrice is the resolved price of one night of a stay
type NightPrice struct {
	Date  time.Time
	Price float64
}

// PriceQuote is the result of resolving all matching pricing rules over a stay
type PriceQuote struct {
	BasePrice          float64
	Nights             int
	AppliedRules       []RuleApplication
	NightlyPrices      []NightPrice
	FinalPricePerNight float64 // average across the stay; equals every night when rules are uniform
	TotalPrice         float64
	MinStay            int // most restrictive minimum stay across matching rules, 0 = none
	AdvanceBookingDays int // most restrictive advance-booking requirement, 0 = none
}
