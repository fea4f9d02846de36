package domain

import (
	"sort"
	"time"
)

// PolicyRule is a single day-threshold tier of a cancellation policy
type PolicyRule struct {
	DaysBeforeCheckIn   int
	RefundPercentage    float64
	DeductionAmount     float64 // fixed deduction from the refundable amount
	DeductionPercentage float64 // percentage deduction from the refundable amount
}

// CancellationPolicy is an ordered list of refund tiers.
// Rules are evaluated in descending DaysBeforeCheckIn order: the first rule
// whose threshold the actual days-before-check-in meets or exceeds wins,
// the last (lowest-threshold) rule is the fallback
type CancellationPolicy struct {
	ID            int64
	Name          string
	Rules         []PolicyRule
	ProcessingFee float64
	FeeExempt     bool // policy waives the flat processing fee
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SortRules puts the rules into canonical order (descending threshold).
// Called when a policy is loaded from storage so the calculation does not
// depend on table row order
func (p *CancellationPolicy) SortRules() {
	sort.SliceStable(p.Rules, func(i, j int) bool {
		return p.Rules[i].DaysBeforeCheckIn > p.Rules[j].DaysBeforeCheckIn
	})
}

// RuleFor selects the applicable tier for the given days-until-check-in.
// Assumes rules are sorted descending; returns false when the policy has no rules
func (p *CancellationPolicy) RuleFor(daysUntilCheckIn int) (PolicyRule, bool) {
	if len(p.Rules) == 0 {
		return PolicyRule{}, false
	}
	for _, rule := range p.Rules {
		if rule.DaysBeforeCheckIn <= daysUntilCheckIn {
			return rule, true
		}
	}
	// No threshold reached, fall back to the strictest rule
	return p.Rules[len(p.Rules)-1], true
}

// RefundBreakdown is the fully itemized result of a refund calculation.
// This is a user-facing financial figure: every stage is retained so the
// final number can be explained, never just shown
type RefundBreakdown struct {
	BookingAmount    float64
	DaysUntilCheckIn int
	AppliedRuleDays  int // DaysBeforeCheckIn of the tier that was applied
	RefundPercentage float64
	RefundableAmount float64
	FixedDeduction   float64
	PercentDeduction float64
	ProcessingFee    float64
	FinalRefund      float64
}
