package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// Сценарий из календаря января: blackout на 1-3 января (конец исключается)
// и подтвержденное бронирование на ночь 5 января. Запрос на 1-6 января
// должен вернуть ровно {Jan 1, Jan 2, Jan 5}
func TestCheckAvailability_BlackoutAndBookingScenario(t *testing.T) {
	stay := dr(date(2026, 1, 1), date(2026, 1, 6))

	bookings := []domain.OccupiedInterval{
		{BookingID: 10, Dates: dr(date(2026, 1, 5), date(2026, 1, 6)), Status: domain.StatusConfirmed},
	}
	restrictions := []domain.Restriction{
		{ID: 1, Dates: dr(date(2026, 1, 1), date(2026, 1, 3)), AllowBooking: false, Reason: "New Year closure", Source: domain.SourceBlackout},
	}

	result, err := CheckAvailability(7, stay, bookings, restrictions)
	require.NoError(t, err)

	assert.False(t, result.Available)
	require.Len(t, result.UnavailableDates, 3)
	assert.Equal(t, date(2026, 1, 1), result.UnavailableDates[0])
	assert.Equal(t, date(2026, 1, 2), result.UnavailableDates[1])
	assert.Equal(t, date(2026, 1, 5), result.UnavailableDates[2])

	assert.Equal(t, "New Year closure", result.Reasons["2026-01-01"])
	assert.Equal(t, "New Year closure", result.Reasons["2026-01-02"])
	assert.Equal(t, domain.ReasonAlreadyBooked, result.Reasons["2026-01-05"])
	assert.Empty(t, result.StayViolation)
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	stay := dr(date(2026, 1, 1), date(2026, 1, 6))
	bookings := []domain.OccupiedInterval{
		{BookingID: 10, Dates: dr(date(2026, 1, 2), date(2026, 1, 4)), Status: domain.StatusPending},
	}
	restrictions := []domain.Restriction{
		{ID: 1, Dates: dr(date(2026, 1, 4), date(2026, 1, 5)), AllowBooking: false, Source: domain.SourceMaintenance},
	}

	first, err := CheckAvailability(7, stay, bookings, restrictions)
	require.NoError(t, err)
	second, err := CheckAvailability(7, stay, bookings, restrictions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Добавление более строгого ограничения никогда не расширяет доступность
func TestCheckAvailability_Monotonicity(t *testing.T) {
	stay := dr(date(2026, 2, 1), date(2026, 2, 8))
	restrictions := []domain.Restriction{
		{ID: 1, Dates: dr(date(2026, 2, 2), date(2026, 2, 4)), AllowBooking: false, Source: domain.SourceBlackout},
	}

	base, err := CheckAvailability(7, stay, nil, restrictions)
	require.NoError(t, err)

	extended := append([]domain.Restriction{}, restrictions...)
	extended = append(extended, domain.Restriction{
		ID: 2, Dates: dr(date(2026, 2, 5), date(2026, 2, 6)), AllowBooking: false, Source: domain.SourceMaintenance,
	})

	stricter, err := CheckAvailability(7, stay, nil, extended)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(stricter.UnavailableDates), len(base.UnavailableDates))
	for _, d := range base.UnavailableDates {
		assert.Contains(t, stricter.UnavailableDates, d)
	}
}

func TestCheckAvailability_BookingStatuses(t *testing.T) {
	stay := dr(date(2026, 3, 1), date(2026, 3, 2))
	night := dr(date(2026, 3, 1), date(2026, 3, 2))

	tests := []struct {
		status  domain.BookingStatus
		blocked bool
	}{
		{domain.StatusPending, true},
		{domain.StatusConfirmed, true},
		{domain.StatusCheckedIn, true},
		{domain.StatusCheckedOut, false},
		{domain.StatusCancelledByGuest, false},
		{domain.StatusCancelledByProperty, false},
		{domain.StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			bookings := []domain.OccupiedInterval{{BookingID: 1, Dates: night, Status: tt.status}}

			result, err := CheckAvailability(7, stay, bookings, nil)
			require.NoError(t, err)
			assert.Equal(t, !tt.blocked, result.Available)
		})
	}
}

func TestCheckAvailability_StayLengthRestrictions(t *testing.T) {
	window := dr(date(2026, 4, 1), date(2026, 5, 1))

	t.Run("min stay violated", func(t *testing.T) {
		restrictions := []domain.Restriction{
			{ID: 1, Dates: window, AllowBooking: true, MinStay: 3, Source: domain.SourceBlackout},
		}

		result, err := CheckAvailability(7, dr(date(2026, 4, 10), date(2026, 4, 12)), nil, restrictions)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Empty(t, result.UnavailableDates, "stay-length violation is top-level, not per-date")
		assert.Contains(t, result.StayViolation, "minimum stay is 3")
	})

	t.Run("min stay satisfied", func(t *testing.T) {
		restrictions := []domain.Restriction{
			{ID: 1, Dates: window, AllowBooking: true, MinStay: 3, Source: domain.SourceBlackout},
		}

		result, err := CheckAvailability(7, dr(date(2026, 4, 10), date(2026, 4, 14)), nil, restrictions)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("max stay violated", func(t *testing.T) {
		restrictions := []domain.Restriction{
			{ID: 1, Dates: window, AllowBooking: true, MaxStay: 5, Source: domain.SourceMaintenance},
		}

		result, err := CheckAvailability(7, dr(date(2026, 4, 10), date(2026, 4, 20)), nil, restrictions)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Contains(t, result.StayViolation, "maximum stay is 5")
	})

	t.Run("most restrictive of several wins", func(t *testing.T) {
		restrictions := []domain.Restriction{
			{ID: 1, Dates: window, AllowBooking: true, MinStay: 2, Source: domain.SourceBlackout},
			{ID: 2, Dates: window, AllowBooking: true, MinStay: 4, Source: domain.SourceBlackout},
		}

		result, err := CheckAvailability(7, dr(date(2026, 4, 10), date(2026, 4, 13)), nil, restrictions)
		require.NoError(t, err)
		assert.Contains(t, result.StayViolation, "minimum stay is 4")
	})
}

func TestCheckAvailability_ScopeFiltering(t *testing.T) {
	stay := dr(date(2026, 6, 1), date(2026, 6, 3))
	restrictions := []domain.Restriction{
		{ID: 1, Scope: domain.RoomScope{99}, Dates: stay, AllowBooking: false, Source: domain.SourceMaintenance},
	}

	result, err := CheckAvailability(7, stay, nil, restrictions)
	require.NoError(t, err)
	assert.True(t, result.Available, "restriction scoped to another room must not block")
}

// Испорченная запрещающая запись не открывает продажи, а блокирует запрос
func TestCheckAvailability_MalformedRestrictionFailsClosed(t *testing.T) {
	stay := dr(date(2026, 6, 1), date(2026, 6, 3))
	restrictions := []domain.Restriction{
		{ID: 1, Dates: dr(date(2026, 6, 3), date(2026, 6, 1)), AllowBooking: false, Source: domain.SourceBlackout},
	}

	result, err := CheckAvailability(7, stay, nil, restrictions)
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Len(t, result.UnavailableDates, stay.Nights())
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	_, err := CheckAvailability(7, dr(date(2026, 6, 3), date(2026, 6, 1)), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability_FullyAvailable(t *testing.T) {
	result, err := CheckAvailability(7, dr(date(2026, 6, 1), date(2026, 6, 4)), nil, nil)
	require.NoError(t, err)

	assert.True(t, result.Available)
	assert.Empty(t, result.UnavailableDates)
	assert.Empty(t, result.Reasons)
}

// Причина первой найденной блокировки сохраняется и не перезаписывается
func TestCheckAvailability_FirstReasonWins(t *testing.T) {
	night := dr(date(2026, 7, 1), date(2026, 7, 2))
	bookings := []domain.OccupiedInterval{
		{BookingID: 1, Dates: night, Status: domain.StatusConfirmed},
	}
	restrictions := []domain.Restriction{
		{ID: 1, Dates: night, AllowBooking: false, Reason: "painting", Source: domain.SourceMaintenance},
	}

	result, err := CheckAvailability(7, night, bookings, restrictions)
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonAlreadyBooked, result.Reasons[night.Start.Format(domain.DateFormat)])
}
