package rules

import (
	"context"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/infra/storage/rates"
)

// RatesRepository интерфейс репозитория конфигурации ставок
type RatesRepository interface {
	ListSeasonalRates(ctx context.Context, asOf time.Time) ([]rates.SeasonalRateRow, error)
	ListDemandLevels(ctx context.Context, asOf time.Time) ([]rates.DemandLevelRow, error)
	ListHolidayRates(ctx context.Context, asOf time.Time) ([]rates.HolidayRateRow, error)
	ListBlackoutDates(ctx context.Context, asOf time.Time) ([]rates.BlackoutDateRow, error)
	ListMaintenanceWindows(ctx context.Context, asOf time.Time) ([]rates.MaintenanceWindowRow, error)
	ListDiscountTiers(ctx context.Context) ([]rates.DiscountTierRow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
