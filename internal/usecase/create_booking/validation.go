package create_booking

import (
	"fmt"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
)

// validateRequest валидирует входные данные и собирает период проживания
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.UserID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return domain.DateRange{}, fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.PolicyID != nil && *req.PolicyID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: policyID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.DateRange{}, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if stay.Nights() > domain.MaxStayNights {
		return domain.DateRange{}, fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return stay, nil
}

// validateCheckInDate проверяет, что заезд не в прошлом
func validateCheckInDate(stay domain.DateRange, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stay.Start.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// validateQuoteRestrictions проверяет ограничения, собранные из правил периода
func validateQuoteRestrictions(quote *domain.PriceQuote, stay domain.DateRange, now time.Time) error {
	if quote.MinStay > 0 && quote.Nights < quote.MinStay {
		return fmt.Errorf("%w: minimum stay is %d nights, requested %d", ErrMinStayNotMet, quote.MinStay, quote.Nights)
	}

	if quote.AdvanceBookingDays > 0 {
		days := pricing.DaysUntilCheckIn(stay.Start, now)
		if days < quote.AdvanceBookingDays {
			return fmt.Errorf("%w: must book at least %d days in advance", ErrAdvanceBookingRequired, quote.AdvanceBookingDays)
		}
	}

	return nil
}
