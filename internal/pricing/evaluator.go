package pricing

import (
	"fmt"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// CheckAvailability проверяет доступность номера на период ночь за ночью
//
// Ночь недоступна, если она занята активным бронированием (pending, confirmed,
// checked_in) или покрыта ограничением с AllowBooking=false. Ограничения
// min/max stay проверяются против длины запрошенного периода целиком и
// попадают в StayViolation, а не в список дат.
//
// Функция чистая и идемпотентная: нарушение жесткого ограничения - это
// Available=false с заполненными причинами, а не ошибка
func CheckAvailability(
	roomID int64,
	stay domain.DateRange,
	bookings []domain.OccupiedInterval,
	restrictions []domain.Restriction,
) (*domain.AvailabilityResult, error) {
	if err := stay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := &domain.AvailabilityResult{
		UnavailableDates: make([]time.Time, 0),
		Reasons:          make(map[string]string),
	}

	matched := matchBlockingRestrictions(roomID, restrictions)

	for _, night := range stay.EachNight() {
		if reason, blocked := nightBlocked(night, bookings, matched); blocked {
			result.UnavailableDates = append(result.UnavailableDates, night)
			result.Reasons[night.Format(domain.DateFormat)] = reason
		}
	}

	result.StayViolation = checkStayLength(roomID, stay, restrictions)
	result.Available = len(result.UnavailableDates) == 0 && result.StayViolation == ""

	return result, nil
}

// matchBlockingRestrictions отбирает запрещающие ограничения для номера
// Ограничение с битым диапазоном дат трактуется как блокирующее весь запрос
// (fail closed): испорченная строка blackout не должна открывать продажи
func matchBlockingRestrictions(roomID int64, restrictions []domain.Restriction) []domain.Restriction {
	matched := make([]domain.Restriction, 0, len(restrictions))
	for _, r := range restrictions {
		if r.AllowBooking {
			continue
		}
		if !r.Scope.AppliesTo(roomID) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// nightBlocked проверяет одну ночь против бронирований и ограничений
// Первая найденная причина сохраняется и не перезаписывается
func nightBlocked(night time.Time, bookings []domain.OccupiedInterval, restrictions []domain.Restriction) (string, bool) {
	for _, b := range bookings {
		if !domain.StatusOccupies(b.Status) {
			continue
		}
		if b.Dates.Validate() != nil {
			continue
		}
		if b.Dates.ContainsDate(night) {
			return domain.ReasonAlreadyBooked, true
		}
	}

	for _, r := range restrictions {
		if r.Dates.Validate() != nil {
			// Fail closed: некорректное ограничение блокирует любую ночь
			return r.BlockReason(), true
		}
		if r.Dates.ContainsDate(night) {
			return r.BlockReason(), true
		}
	}

	return "", false
}

// checkStayLength проверяет длину запрошенного проживания против
// min/max stay всех подходящих ограничений; самое строгое побеждает
func checkStayLength(roomID int64, stay domain.DateRange, restrictions []domain.Restriction) string {
	nights := stay.Nights()

	minStay := 0
	maxStay := 0
	for _, r := range restrictions {
		if !r.Scope.AppliesTo(roomID) {
			continue
		}
		if r.Dates.Validate() != nil || !r.Dates.Overlaps(stay) {
			continue
		}
		if r.MinStay > minStay {
			minStay = r.MinStay
		}
		if r.MaxStay > 0 && (maxStay == 0 || r.MaxStay < maxStay) {
			maxStay = r.MaxStay
		}
	}

	if minStay > 0 && nights < minStay {
		return fmt.Sprintf("minimum stay is %d nights, requested %d", minStay, nights)
	}
	if maxStay > 0 && nights > maxStay {
		return fmt.Sprintf("maximum stay is %d nights, requested %d", maxStay, nights)
	}

	return ""
}
