package rules

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/infra/storage/rates"
)

// normalizeSeasonal приводит строку сезонной ставки к доменному правилу
func normalizeSeasonal(row rates.SeasonalRateRow) domain.PricingRule {
	return domain.PricingRule{
		ID:                 row.ID,
		Scope:              domain.RoomScope(row.RoomIDs),
		Dates:              domain.DateRange{Start: row.StartDate, End: row.EndDate},
		Priority:           row.Priority,
		Strategy:           domain.RuleStrategy(row.AdjustmentType),
		Value:              row.AdjustmentValue,
		MinStay:            row.MinStay,
		AdvanceBookingDays: row.AdvanceBookingDays,
		Source:             domain.SourceSeasonal,
		CreatedAt:          row.CreatedAt,
	}
}

// normalizeDemand приводит уровень спроса к доменному правилу.
// Уровень спроса всегда выражается множителем к текущей цене
func normalizeDemand(row rates.DemandLevelRow) domain.PricingRule {
	return domain.PricingRule{
		ID:        row.ID,
		Scope:     domain.RoomScope(row.RoomIDs),
		Dates:     domain.DateRange{Start: row.StartDate, End: row.EndDate},
		Priority:  row.Priority,
		Strategy:  domain.StrategyMultiplier,
		Value:     row.Multiplier,
		Source:    domain.SourceDemand,
		CreatedAt: row.CreatedAt,
	}
}

// normalizeHoliday приводит праздничную ставку к доменному правилу.
// Праздник занимает ровно один календарный день
func normalizeHoliday(row rates.HolidayRateRow) domain.PricingRule {
	t := row.HolidayDate
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return domain.PricingRule{
		ID:        row.ID,
		Scope:     domain.RoomScope(row.RoomIDs),
		Dates:     domain.DateRange{Start: day, End: day.AddDate(0, 0, 1)},
		Priority:  row.Priority,
		Strategy:  domain.RuleStrategy(row.AdjustmentType),
		Value:     row.AdjustmentValue,
		MinStay:   row.MinStay,
		Source:    domain.SourceHoliday,
		CreatedAt: row.CreatedAt,
	}
}

// normalizeBlackout приводит blackout-период к доменному ограничению
func normalizeBlackout(row rates.BlackoutDateRow) domain.Restriction {
	return domain.Restriction{
		ID:           row.ID,
		Scope:        domain.RoomScope(row.RoomIDs),
		Dates:        domain.DateRange{Start: row.StartDate, End: row.EndDate},
		AllowBooking: row.AllowBooking,
		MinStay:      row.MinStay,
		MaxStay:      row.MaxStay,
		Reason:       row.Reason,
		Source:       domain.SourceBlackout,
	}
}

// normalizeMaintenance приводит окно обслуживания к доменному ограничению.
// Обслуживание всегда запрещает бронирование и привязано к одному номеру
func normalizeMaintenance(row rates.MaintenanceWindowRow) domain.Restriction {
	return domain.Restriction{
		ID:           row.ID,
		Scope:        domain.RoomScope{row.RoomID},
		Dates:        domain.DateRange{Start: row.StartDate, End: row.EndDate},
		AllowBooking: false,
		Reason:       row.Reason,
		Source:       domain.SourceMaintenance,
	}
}
