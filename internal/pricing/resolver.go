package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// matchRules отбирает правила, применимые к номеру и пересекающиеся с диапазоном
// Некорректные правила (битые даты, неизвестная стратегия) пропускаются:
// цена в этом случае остается базовой, а не угадывается
func matchRules(roomID int64, stay domain.DateRange, rules []domain.PricingRule) []domain.PricingRule {
	matched := make([]domain.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsValid() {
			continue
		}
		if !rule.Scope.AppliesTo(roomID) {
			continue
		}
		if !rule.Dates.Overlaps(stay) {
			continue
		}
		matched = append(matched, rule)
	}
	return matched
}

// sortByPriority сортирует правила по убыванию приоритета
// При равных приоритетах выигрывает правило, созданное позже: список
// разворачивается (поздние вставки впереди) и стабильно сортируется
func sortByPriority(rules []domain.PricingRule) []domain.PricingRule {
	sorted := make([]domain.PricingRule, len(rules))
	for i, rule := range rules {
		sorted[len(rules)-1-i] = rule
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

// ResolveNight вычисляет цену одной ночи
//
// Политика комбинирования (зафиксирована, см. DESIGN.md): правила применяются
// в порядке приоритета; percentage и multiplier модифицируют текущую цену,
// fixed_amount накапливаются отдельно и добавляются после всех мультипликативных
// правил. Результат не может быть отрицательным
func ResolveNight(roomID int64, basePrice float64, night time.Time, rules []domain.PricingRule) (float64, []domain.RuleApplication) {
	nightRange := domain.DateRange{Start: night, End: night.AddDate(0, 0, 1)}
	matched := sortByPriority(matchRules(roomID, nightRange, rules))

	price := basePrice
	fixed := 0.0
	applications := make([]domain.RuleApplication, 0, len(matched))

	for _, rule := range matched {
		before := price + fixed

		switch rule.Strategy {
		case domain.StrategyPercentage:
			price += price * rule.Value / 100
		case domain.StrategyMultiplier:
			price *= rule.Value
		case domain.StrategyFixedAmount:
			fixed += rule.Value
		}

		applications = append(applications, domain.RuleApplication{
			RuleID:      rule.ID,
			Source:      rule.Source,
			Strategy:    rule.Strategy,
			Value:       rule.Value,
			Date:        night,
			PriceBefore: before,
			PriceAfter:  price + fixed,
		})
	}

	final := price + fixed
	if final < 0 {
		final = 0
	}

	return final, applications
}

// ResolveStay вычисляет котировку цены за весь период проживания
//
// Цена считается по ночам: разные правила могут покрывать разные части
// периода, итог - сумма ночей. Ограничения (minStay, advanceBookingDays)
// берутся как максимум по всем подошедшим правилам: ограничение безопасности
// не может быть ослаблено правилом с меньшим приоритетом
func ResolveStay(roomID int64, basePrice float64, stay domain.DateRange, rules []domain.PricingRule) (*domain.PriceQuote, error) {
	if err := stay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if basePrice < 0 {
		return nil, fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}

	quote := &domain.PriceQuote{
		BasePrice:     basePrice,
		Nights:        stay.Nights(),
		AppliedRules:  make([]domain.RuleApplication, 0),
		NightlyPrices: make([]domain.NightPrice, 0, stay.Nights()),
	}

	for _, night := range stay.EachNight() {
		price, applications := ResolveNight(roomID, basePrice, night, rules)
		quote.NightlyPrices = append(quote.NightlyPrices, domain.NightPrice{Date: night, Price: price})
		quote.AppliedRules = append(quote.AppliedRules, applications...)
		quote.TotalPrice += price
	}

	quote.FinalPricePerNight = quote.TotalPrice / float64(quote.Nights)

	// Ограничения агрегируются по всем правилам, пересекающимся с периодом
	for _, rule := range matchRules(roomID, stay, rules) {
		if rule.MinStay > quote.MinStay {
			quote.MinStay = rule.MinStay
		}
		if rule.AdvanceBookingDays > quote.AdvanceBookingDays {
			quote.AdvanceBookingDays = rule.AdvanceBookingDays
		}
	}

	return quote, nil
}
