package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := NewDateRange(date(2026, 1, 1), date(2026, 1, 4))
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewDateRange(date(2026, 1, 1), date(2026, 1, 1))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewDateRange(date(2026, 1, 5), date(2026, 1, 1))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("zero boundaries", func(t *testing.T) {
		_, err := NewDateRange(time.Time{}, date(2026, 1, 1))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		r, err := NewDateRange(
			time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
		assert.Equal(t, date(2026, 1, 1), r.Start)
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: date(2026, 1, 10), End: date(2026, 1, 20)}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", DateRange{date(2026, 1, 10), date(2026, 1, 20)}, true},
		{"contained", DateRange{date(2026, 1, 12), date(2026, 1, 15)}, true},
		{"overlaps start", DateRange{date(2026, 1, 5), date(2026, 1, 11)}, true},
		{"overlaps end", DateRange{date(2026, 1, 19), date(2026, 1, 25)}, true},
		{"adjacent before", DateRange{date(2026, 1, 1), date(2026, 1, 10)}, false},
		{"adjacent after", DateRange{date(2026, 1, 20), date(2026, 1, 25)}, false},
		{"disjoint", DateRange{date(2026, 2, 1), date(2026, 2, 5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDateRange_ContainsDate(t *testing.T) {
	r := DateRange{Start: date(2026, 1, 10), End: date(2026, 1, 12)}

	assert.True(t, r.ContainsDate(date(2026, 1, 10)))
	assert.True(t, r.ContainsDate(date(2026, 1, 11)))
	assert.False(t, r.ContainsDate(date(2026, 1, 12)), "end date is exclusive")
	assert.False(t, r.ContainsDate(date(2026, 1, 9)))
}

func TestDateRange_EachNight(t *testing.T) {
	r := DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 4)}

	nights := r.EachNight()
	require.Len(t, nights, 3)
	assert.Equal(t, date(2026, 1, 1), nights[0])
	assert.Equal(t, date(2026, 1, 2), nights[1])
	assert.Equal(t, date(2026, 1, 3), nights[2])
}

func TestRoomScope_AppliesTo(t *testing.T) {
	assert.True(t, RoomScope{}.AppliesTo(42), "empty scope means all rooms")
	assert.True(t, RoomScope{1, 42}.AppliesTo(42))
	assert.False(t, RoomScope{1, 2}.AppliesTo(42))
}

func TestCancellationPolicy_RuleFor(t *testing.T) {
	policy := CancellationPolicy{
		Rules: []PolicyRule{
			{DaysBeforeCheckIn: 30, RefundPercentage: 100},
			{DaysBeforeCheckIn: 7, RefundPercentage: 50},
			{DaysBeforeCheckIn: 0, RefundPercentage: 0},
		},
	}

	tests := []struct {
		days     int
		wantDays int
	}{
		{45, 30},
		{30, 30},
		{10, 7},
		{7, 7},
		{3, 0},
		{0, 0},
		{-2, 0}, // past check-in falls back to the last rule
	}

	for _, tt := range tests {
		rule, ok := policy.RuleFor(tt.days)
		require.True(t, ok)
		assert.Equal(t, tt.wantDays, rule.DaysBeforeCheckIn, "days=%d", tt.days)
	}
}

func TestCancellationPolicy_SortRules(t *testing.T) {
	policy := CancellationPolicy{
		Rules: []PolicyRule{
			{DaysBeforeCheckIn: 0},
			{DaysBeforeCheckIn: 30},
			{DaysBeforeCheckIn: 7},
		},
	}

	policy.SortRules()

	assert.Equal(t, 30, policy.Rules[0].DaysBeforeCheckIn)
	assert.Equal(t, 7, policy.Rules[1].DaysBeforeCheckIn)
	assert.Equal(t, 0, policy.Rules[2].DaysBeforeCheckIn)
}

func TestDiscountTier_Matches(t *testing.T) {
	max := 10
	bounded := DiscountTier{MinRooms: 5, MaxRooms: &max}
	unbounded := DiscountTier{MinRooms: 11}

	assert.False(t, bounded.Matches(4))
	assert.True(t, bounded.Matches(5))
	assert.True(t, bounded.Matches(10))
	assert.False(t, bounded.Matches(11))

	assert.True(t, unbounded.Matches(11))
	assert.True(t, unbounded.Matches(500))
}
