package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// DaysUntilCheckIn возвращает число дней до заезда, округленное вверх
// Отмена за 6.5 суток до заезда считается отменой за 7 дней
func DaysUntilCheckIn(checkIn, now time.Time) int {
	return int(math.Ceil(checkIn.Sub(now).Hours() / 24))
}

// CalculateRefund вычисляет возврат по политике отмены
//
// Выбирается первое правило (порядок - по убыванию порога), чей порог
// не превышает фактическое число дней до заезда; если ни одно не подошло,
// применяется последнее правило. Из возвращаемой суммы вычитаются удержания
// правила и фиксированный сбор за обработку (если политика его не отменяет).
// Итог не бывает отрицательным и не превышает сумму бронирования
func CalculateRefund(
	bookingAmount float64,
	checkInDate time.Time,
	policy *domain.CancellationPolicy,
	now time.Time,
) (*domain.RefundBreakdown, error) {
	if bookingAmount < 0 {
		return nil, fmt.Errorf("%w: booking amount must not be negative", ErrInvalidInput)
	}
	if checkInDate.IsZero() {
		return nil, fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}
	if policy == nil || len(policy.Rules) == 0 {
		return nil, ErrInvalidPolicy
	}

	days := DaysUntilCheckIn(checkInDate, now)

	rule, ok := policy.RuleFor(days)
	if !ok {
		return nil, ErrInvalidPolicy
	}

	breakdown := &domain.RefundBreakdown{
		BookingAmount:    bookingAmount,
		DaysUntilCheckIn: days,
		AppliedRuleDays:  rule.DaysBeforeCheckIn,
		RefundPercentage: rule.RefundPercentage,
	}

	breakdown.RefundableAmount = bookingAmount * rule.RefundPercentage / 100
	// Возврат не превышает сумму бронирования даже при проценте больше 100
	// в некорректно заведенном правиле
	if breakdown.RefundableAmount > bookingAmount {
		breakdown.RefundableAmount = bookingAmount
	}
	breakdown.FixedDeduction = rule.DeductionAmount
	breakdown.PercentDeduction = breakdown.RefundableAmount * rule.DeductionPercentage / 100

	if !policy.FeeExempt {
		breakdown.ProcessingFee = policy.ProcessingFee
	}

	final := breakdown.RefundableAmount - breakdown.FixedDeduction - breakdown.PercentDeduction - breakdown.ProcessingFee
	if final < 0 {
		final = 0
	}
	breakdown.FinalRefund = final

	return breakdown, nil
}
