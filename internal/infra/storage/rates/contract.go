package rates

import (
	"time"

	"github.com/pkamnoy/PVB-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// SeasonalRateRow строка таблицы seasonal_rates
// Каждая коллекция источников правил хранится в своей таблице со своей схемой;
// нормализацию в domain.PricingRule выполняет сервис правил
type SeasonalRateRow struct {
	ID                 int64
	RoomIDs            []int64 // пустой массив = все номера
	StartDate          time.Time
	EndDate            time.Time
	AdjustmentType     string // percentage | fixed_amount | multiplier
	AdjustmentValue    float64
	Priority           int
	MinStay            int
	AdvanceBookingDays int
	CreatedAt          time.Time
}

// DemandLevelRow строка таблицы demand_levels
type DemandLevelRow struct {
	ID         int64
	RoomIDs    []int64
	StartDate  time.Time
	EndDate    time.Time
	Level      string // low | medium | high | peak
	Multiplier float64
	Priority   int
	CreatedAt  time.Time
}

// HolidayRateRow строка таблицы holiday_rates
// Праздник занимает один календарный день
type HolidayRateRow struct {
	ID              int64
	Name            string
	HolidayDate     time.Time
	RoomIDs         []int64
	AdjustmentType  string
	AdjustmentValue float64
	Priority        int
	MinStay         int
	CreatedAt       time.Time
}

// BlackoutDateRow строка таблицы blackout_dates
type BlackoutDateRow struct {
	ID           int64
	RoomIDs      []int64
	StartDate    time.Time
	EndDate      time.Time
	AllowBooking bool
	MinStay      int
	MaxStay      int
	Reason       string
	CreatedAt    time.Time
}

// MaintenanceWindowRow строка таблицы maintenance_windows
// Закрытие на обслуживание всегда запрещает бронирование
type MaintenanceWindowRow struct {
	ID        int64
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	CreatedAt time.Time
}

// DiscountTierRow строка таблицы group_discount_tiers
type DiscountTierRow struct {
	ID                 int64
	Name               string
	MinRooms           int
	MaxRooms           *int
	DiscountPercentage float64
}
