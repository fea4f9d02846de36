package pricing

import (
	"fmt"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// CalculateGroupPrice вычисляет стоимость группового бронирования
//
// Стоимость каждой позиции считается через ResolveStay, поэтому сезонные и
// праздничные правила применяются к каждому номеру группы. Скидка выбирается
// одним тиром по суммарному количеству номеров и применяется к subtotal до
// налога; налог начисляется на сумму после скидки, депозит - на итог с налогом
func CalculateGroupPrice(
	rooms []domain.GroupRoom,
	stay domain.DateRange,
	tiers []domain.DiscountTier,
	rules []domain.PricingRule,
) (*domain.GroupQuote, error) {
	if err := stay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	quote := &domain.GroupQuote{
		Rooms:  make([]domain.RoomSubtotal, 0, len(rooms)),
		Nights: stay.Nights(),
	}

	for _, room := range rooms {
		if room.Quantity <= 0 {
			return nil, fmt.Errorf("%w: room %d quantity must be positive", ErrInvalidInput, room.RoomID)
		}

		roomQuote, err := ResolveStay(room.RoomID, room.BasePrice, stay, rules)
		if err != nil {
			return nil, err
		}

		subtotal := roomQuote.TotalPrice * float64(room.Quantity)
		quote.Rooms = append(quote.Rooms, domain.RoomSubtotal{
			RoomID:        room.RoomID,
			Quantity:      room.Quantity,
			Nights:        roomQuote.Nights,
			PricePerNight: roomQuote.FinalPricePerNight,
			Subtotal:      subtotal,
		})

		quote.TotalRooms += room.Quantity
		quote.Subtotal += subtotal
	}

	quote.AppliedTier = selectTier(quote.TotalRooms, tiers)
	if quote.AppliedTier != nil {
		quote.DiscountAmount = quote.Subtotal * quote.AppliedTier.DiscountPercentage / 100
	}

	quote.TaxableAmount = quote.Subtotal - quote.DiscountAmount
	quote.TaxAmount = quote.TaxableAmount * domain.TaxRatePercent / 100
	quote.TotalAmount = quote.TaxableAmount + quote.TaxAmount
	quote.DepositAmount = quote.TotalAmount * domain.DepositRatePercent / 100

	return quote, nil
}

// selectTier выбирает единственный применимый тир скидки: среди тиров,
// чей диапазон покрывает totalRooms, побеждает тир с наибольшим MinRooms
// Тиры никогда не складываются
func selectTier(totalRooms int, tiers []domain.DiscountTier) *domain.DiscountTier {
	var best *domain.DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if !tier.Matches(totalRooms) {
			continue
		}
		if best == nil || tier.MinRooms > best.MinRooms {
			best = tier
		}
	}
	if best == nil {
		return nil
	}
	selected := *best
	return &selected
}
