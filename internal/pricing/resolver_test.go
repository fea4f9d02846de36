package pricing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dr(start, end time.Time) domain.DateRange {
	return domain.DateRange{Start: start, End: end}
}

// Декабрьский сценарий: сезонное правило +20% (приоритет 5) на 20-31 декабря,
// праздничная надбавка +1000 (приоритет 10) только на 25 декабря.
// Политика комбинирования - мультипликативные правила к текущей цене,
// фиксированные суммы добавляются после: (1000 * 1.2) + 1000 = 2200
func TestResolveNight_CombinationOrder(t *testing.T) {
	rules := []domain.PricingRule{
		{
			ID:       1,
			Dates:    dr(date(2026, 12, 20), date(2026, 12, 31)),
			Priority: 5,
			Strategy: domain.StrategyPercentage,
			Value:    20,
			Source:   domain.SourceSeasonal,
		},
		{
			ID:       2,
			Dates:    dr(date(2026, 12, 25), date(2026, 12, 26)),
			Priority: 10,
			Strategy: domain.StrategyFixedAmount,
			Value:    1000,
			Source:   domain.SourceHoliday,
		},
	}

	price, applications := ResolveNight(7, 1000, date(2026, 12, 25), rules)

	assert.InDelta(t, 2200, price, 1e-9)
	require.Len(t, applications, 2)
	// Праздничное правило имеет больший приоритет и применяется первым
	assert.Equal(t, int64(2), applications[0].RuleID)
	assert.Equal(t, int64(1), applications[1].RuleID)

	// Ночь вне праздничного правила получает только сезонную надбавку
	price, _ = ResolveNight(7, 1000, date(2026, 12, 24), rules)
	assert.InDelta(t, 1200, price, 1e-9)
}

func TestResolveStay_PerNightPricing(t *testing.T) {
	rules := []domain.PricingRule{
		{
			ID:       1,
			Dates:    dr(date(2026, 12, 20), date(2026, 12, 31)),
			Priority: 5,
			Strategy: domain.StrategyPercentage,
			Value:    20,
			Source:   domain.SourceSeasonal,
		},
		{
			ID:       2,
			Dates:    dr(date(2026, 12, 25), date(2026, 12, 26)),
			Priority: 10,
			Strategy: domain.StrategyFixedAmount,
			Value:    1000,
			Source:   domain.SourceHoliday,
		},
	}

	quote, err := ResolveStay(7, 1000, dr(date(2026, 12, 24), date(2026, 12, 27)), rules)
	require.NoError(t, err)

	require.Equal(t, 3, quote.Nights)
	require.Len(t, quote.NightlyPrices, 3)
	assert.InDelta(t, 1200, quote.NightlyPrices[0].Price, 1e-9) // Dec 24
	assert.InDelta(t, 2200, quote.NightlyPrices[1].Price, 1e-9) // Dec 25
	assert.InDelta(t, 1200, quote.NightlyPrices[2].Price, 1e-9) // Dec 26
	assert.InDelta(t, 4600, quote.TotalPrice, 1e-9)
	assert.InDelta(t, 4600.0/3, quote.FinalPricePerNight, 1e-9)
}

// Перестановка списка правил с одинаковыми приоритетами не меняет итоговую цену
func TestResolveStay_PermutationIndependence(t *testing.T) {
	stay := dr(date(2026, 3, 1), date(2026, 3, 5))
	rules := []domain.PricingRule{
		{ID: 1, Dates: stay, Priority: 3, Strategy: domain.StrategyPercentage, Value: 10, Source: domain.SourceSeasonal},
		{ID: 2, Dates: stay, Priority: 3, Strategy: domain.StrategyMultiplier, Value: 1.5, Source: domain.SourceDemand},
		{ID: 3, Dates: stay, Priority: 3, Strategy: domain.StrategyFixedAmount, Value: 250, Source: domain.SourceHoliday},
		{ID: 4, Dates: stay, Priority: 3, Strategy: domain.StrategyPercentage, Value: -5, Source: domain.SourceDemand},
	}

	reference, err := ResolveStay(1, 2000, stay, rules)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.PricingRule, len(rules))
		copy(shuffled, rules)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		quote, err := ResolveStay(1, 2000, stay, shuffled)
		require.NoError(t, err)
		assert.InDelta(t, reference.TotalPrice, quote.TotalPrice, 1e-9)
	}
}

func TestResolveNight_PriorityTieBreak(t *testing.T) {
	night := date(2026, 5, 10)
	stay := dr(night, night.AddDate(0, 0, 1))

	// Одинаковый приоритет: правило, добавленное позже, применяется первым
	rules := []domain.PricingRule{
		{ID: 1, Dates: stay, Priority: 5, Strategy: domain.StrategyPercentage, Value: 10, Source: domain.SourceSeasonal},
		{ID: 2, Dates: stay, Priority: 5, Strategy: domain.StrategyPercentage, Value: 20, Source: domain.SourceDemand},
	}

	_, applications := ResolveNight(1, 1000, night, rules)
	require.Len(t, applications, 2)
	assert.Equal(t, int64(2), applications[0].RuleID)
	assert.Equal(t, int64(1), applications[1].RuleID)
}

func TestResolveNight_ScopeFiltering(t *testing.T) {
	night := date(2026, 5, 10)
	window := dr(date(2026, 5, 1), date(2026, 6, 1))

	rules := []domain.PricingRule{
		{ID: 1, Scope: domain.RoomScope{99}, Dates: window, Priority: 1, Strategy: domain.StrategyPercentage, Value: 50, Source: domain.SourceSeasonal},
		{ID: 2, Scope: domain.RoomScope{}, Dates: window, Priority: 1, Strategy: domain.StrategyPercentage, Value: 10, Source: domain.SourceDemand},
	}

	price, applications := ResolveNight(7, 1000, night, rules)

	// Правило для чужого номера не применяется, пустой scope действует на все номера
	assert.InDelta(t, 1100, price, 1e-9)
	require.Len(t, applications, 1)
	assert.Equal(t, int64(2), applications[0].RuleID)
}

func TestResolveNight_MalformedRulesSkipped(t *testing.T) {
	night := date(2026, 5, 10)
	window := dr(date(2026, 5, 1), date(2026, 6, 1))

	rules := []domain.PricingRule{
		// Битый диапазон дат
		{ID: 1, Dates: dr(date(2026, 6, 1), date(2026, 5, 1)), Priority: 9, Strategy: domain.StrategyPercentage, Value: 50, Source: domain.SourceSeasonal},
		// Неизвестная стратегия
		{ID: 2, Dates: window, Priority: 9, Strategy: "surge", Value: 2, Source: domain.SourceDemand},
		// Отрицательный множитель
		{ID: 3, Dates: window, Priority: 9, Strategy: domain.StrategyMultiplier, Value: -1, Source: domain.SourceDemand},
	}

	price, applications := ResolveNight(7, 1000, night, rules)

	// Fail open: цена остается базовой
	assert.InDelta(t, 1000, price, 1e-9)
	assert.Empty(t, applications)
}

func TestResolveNight_ClampedAtZero(t *testing.T) {
	night := date(2026, 5, 10)
	window := dr(date(2026, 5, 1), date(2026, 6, 1))

	rules := []domain.PricingRule{
		{ID: 1, Dates: window, Priority: 1, Strategy: domain.StrategyFixedAmount, Value: -5000, Source: domain.SourceDemand},
	}

	price, _ := ResolveNight(7, 1000, night, rules)
	assert.Equal(t, 0.0, price)
}

func TestResolveStay_MostRestrictiveWins(t *testing.T) {
	stay := dr(date(2026, 7, 1), date(2026, 7, 5))

	rules := []domain.PricingRule{
		{ID: 1, Dates: stay, Priority: 10, Strategy: domain.StrategyPercentage, Value: 5, MinStay: 2, AdvanceBookingDays: 7, Source: domain.SourceSeasonal},
		{ID: 2, Dates: stay, Priority: 1, Strategy: domain.StrategyPercentage, Value: 5, MinStay: 5, AdvanceBookingDays: 3, Source: domain.SourceDemand},
	}

	quote, err := ResolveStay(7, 1000, stay, rules)
	require.NoError(t, err)

	// Ограничения берутся максимальные по всем правилам, приоритет их не ослабляет
	assert.Equal(t, 5, quote.MinStay)
	assert.Equal(t, 7, quote.AdvanceBookingDays)
}

func TestResolveStay_InvalidInput(t *testing.T) {
	valid := dr(date(2026, 7, 1), date(2026, 7, 5))

	_, err := ResolveStay(7, 1000, dr(date(2026, 7, 5), date(2026, 7, 1)), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ResolveStay(7, -100, valid, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveStay_NoRules(t *testing.T) {
	quote, err := ResolveStay(7, 1500, dr(date(2026, 7, 1), date(2026, 7, 4)), nil)
	require.NoError(t, err)

	assert.InDelta(t, 4500, quote.TotalPrice, 1e-9)
	assert.InDelta(t, 1500, quote.FinalPricePerNight, 1e-9)
	assert.Empty(t, quote.AppliedRules)
	assert.Equal(t, 0, quote.MinStay)
}
