package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/pkamnoy/PVB-BookingService/pkg/dbmetrics"
	"github.com/pkamnoy/PVB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации ценообразования и ограничений
// Только чтение: строки редактируются админкой другого сервиса,
// этот сервис лишь интерпретирует их
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ставок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSeasonalRates возвращает активные сезонные правила, действующие после asOf
func (r *Repository) ListSeasonalRates(ctx context.Context, asOf time.Time) ([]SeasonalRateRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_ids",
		"start_date",
		"end_date",
		"adjustment_type",
		"adjustment_value",
		"priority",
		"min_stay",
		"advance_booking_days",
		"created_at",
	).
		From("seasonal_rates").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Gt{"end_date": asOf}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalRates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []SeasonalRateRow
	for rows.Next() {
		var row SeasonalRateRow
		var roomIDs pq.Int64Array

		err = rows.Scan(
			&row.ID,
			&roomIDs,
			&row.StartDate,
			&row.EndDate,
			&row.AdjustmentType,
			&row.AdjustmentValue,
			&row.Priority,
			&row.MinStay,
			&row.AdvanceBookingDays,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSeasonalRates - scan row: %v", ErrScanRow, err)
		}

		row.RoomIDs = roomIDs
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalRates - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListDemandLevels возвращает активные правила ценовых уровней спроса
func (r *Repository) ListDemandLevels(ctx context.Context, asOf time.Time) ([]DemandLevelRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_ids",
		"start_date",
		"end_date",
		"level",
		"multiplier",
		"priority",
		"created_at",
	).
		From("demand_levels").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Gt{"end_date": asOf}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDemandLevels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDemandLevels - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []DemandLevelRow
	for rows.Next() {
		var row DemandLevelRow
		var roomIDs pq.Int64Array

		err = rows.Scan(
			&row.ID,
			&roomIDs,
			&row.StartDate,
			&row.EndDate,
			&row.Level,
			&row.Multiplier,
			&row.Priority,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDemandLevels - scan row: %v", ErrScanRow, err)
		}

		row.RoomIDs = roomIDs
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDemandLevels - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListHolidayRates возвращает праздничные надбавки, начиная с asOf
func (r *Repository) ListHolidayRates(ctx context.Context, asOf time.Time) ([]HolidayRateRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"holiday_date",
		"room_ids",
		"adjustment_type",
		"adjustment_value",
		"priority",
		"min_stay",
		"created_at",
	).
		From("holiday_rates").
		Where(squirrel.GtOrEq{"holiday_date": asOf}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []HolidayRateRow
	for rows.Next() {
		var row HolidayRateRow
		var roomIDs pq.Int64Array

		err = rows.Scan(
			&row.ID,
			&row.Name,
			&row.HolidayDate,
			&roomIDs,
			&row.AdjustmentType,
			&row.AdjustmentValue,
			&row.Priority,
			&row.MinStay,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHolidayRates - scan row: %v", ErrScanRow, err)
		}

		row.RoomIDs = roomIDs
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHolidayRates - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListBlackoutDates возвращает blackout периоды, действующие после asOf
func (r *Repository) ListBlackoutDates(ctx context.Context, asOf time.Time) ([]BlackoutDateRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_ids",
		"start_date",
		"end_date",
		"allow_booking",
		"min_stay",
		"max_stay",
		"reason",
		"created_at",
	).
		From("blackout_dates").
		Where(squirrel.Gt{"end_date": asOf}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutDates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []BlackoutDateRow
	for rows.Next() {
		var row BlackoutDateRow
		var roomIDs pq.Int64Array

		err = rows.Scan(
			&row.ID,
			&roomIDs,
			&row.StartDate,
			&row.EndDate,
			&row.AllowBooking,
			&row.MinStay,
			&row.MaxStay,
			&row.Reason,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlackoutDates - scan row: %v", ErrScanRow, err)
		}

		row.RoomIDs = roomIDs
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutDates - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListMaintenanceWindows возвращает окна обслуживания, действующие после asOf
func (r *Repository) ListMaintenanceWindows(ctx context.Context, asOf time.Time) ([]MaintenanceWindowRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"start_date",
		"end_date",
		"reason",
		"created_at",
	).
		From("maintenance_windows").
		Where(squirrel.Gt{"end_date": asOf}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMaintenanceWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMaintenanceWindows - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []MaintenanceWindowRow
	for rows.Next() {
		var row MaintenanceWindowRow

		err = rows.Scan(
			&row.ID,
			&row.RoomID,
			&row.StartDate,
			&row.EndDate,
			&row.Reason,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMaintenanceWindows - scan row: %v", ErrScanRow, err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMaintenanceWindows - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListDiscountTiers возвращает все тиры групповых скидок
func (r *Repository) ListDiscountTiers(ctx context.Context) ([]DiscountTierRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"min_rooms",
		"max_rooms",
		"discount_percentage",
	).
		From("group_discount_tiers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("min_rooms ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDiscountTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDiscountTiers - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []DiscountTierRow
	for rows.Next() {
		var row DiscountTierRow

		err = rows.Scan(
			&row.ID,
			&row.Name,
			&row.MinRooms,
			&row.MaxRooms,
			&row.DiscountPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDiscountTiers - scan row: %v", ErrScanRow, err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDiscountTiers - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}
