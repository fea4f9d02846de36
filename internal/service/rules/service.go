package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

// Service собирает правила ценообразования и ограничения доступности
// из всех источников конфигурации и нормализует их в доменные типы.
// Движок расчёта цен работает только с нормализованными правилами и
// ничего не знает про схемы исходных таблиц
type Service struct {
	repo   RatesRepository
	logger Logger
}

// New создает новый сервис правил
func New(repo RatesRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListActiveRules возвращает нормализованные правила ценообразования из всех
// источников: сезонные ставки, уровни спроса, праздничный календарь.
// Некорректные записи пропускаются с предупреждением в лог: ошибка
// конфигурации одного правила не должна ломать расчёт цены целиком
func (s *Service) ListActiveRules(ctx context.Context, asOf time.Time) ([]domain.PricingRule, error) {
	seasonal, err := s.repo.ListSeasonalRates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveRules - failed to list seasonal rates: %v", ErrInternal, err)
	}

	demand, err := s.repo.ListDemandLevels(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveRules - failed to list demand levels: %v", ErrInternal, err)
	}

	holiday, err := s.repo.ListHolidayRates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveRules - failed to list holiday rates: %v", ErrInternal, err)
	}

	rules := make([]domain.PricingRule, 0, len(seasonal)+len(demand)+len(holiday))

	for _, row := range seasonal {
		rule := normalizeSeasonal(row)
		if !rule.IsValid() {
			s.logger.Warn("[Rules] ListActiveRules: skipping malformed seasonal rate id=%d type=%q", row.ID, row.AdjustmentType)
			continue
		}
		rules = append(rules, rule)
	}

	for _, row := range demand {
		rule := normalizeDemand(row)
		if !rule.IsValid() {
			s.logger.Warn("[Rules] ListActiveRules: skipping malformed demand level id=%d multiplier=%f", row.ID, row.Multiplier)
			continue
		}
		rules = append(rules, rule)
	}

	for _, row := range holiday {
		rule := normalizeHoliday(row)
		if !rule.IsValid() {
			s.logger.Warn("[Rules] ListActiveRules: skipping malformed holiday rate id=%d type=%q", row.ID, row.AdjustmentType)
			continue
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// ListRestrictions возвращает нормализованные ограничения доступности:
// blackout-периоды и окна технического обслуживания.
// Некорректные запрещающие записи НЕ отбрасываются: запрет с битыми датами
// безопаснее трактовать как действующий, чем молча продать закрытый номер
func (s *Service) ListRestrictions(ctx context.Context, asOf time.Time) ([]domain.Restriction, error) {
	blackouts, err := s.repo.ListBlackoutDates(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRestrictions - failed to list blackout dates: %v", ErrInternal, err)
	}

	maintenance, err := s.repo.ListMaintenanceWindows(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRestrictions - failed to list maintenance windows: %v", ErrInternal, err)
	}

	restrictions := make([]domain.Restriction, 0, len(blackouts)+len(maintenance))
	for _, row := range blackouts {
		restrictions = append(restrictions, normalizeBlackout(row))
	}
	for _, row := range maintenance {
		restrictions = append(restrictions, normalizeMaintenance(row))
	}

	return restrictions, nil
}

// ListDiscountTiers возвращает уровни групповых скидок
func (s *Service) ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	rows, err := s.repo.ListDiscountTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDiscountTiers - failed to list discount tiers: %v", ErrInternal, err)
	}

	tiers := make([]domain.DiscountTier, 0, len(rows))
	for _, row := range rows {
		tiers = append(tiers, domain.DiscountTier{
			ID:                 row.ID,
			Name:               row.Name,
			MinRooms:           row.MinRooms,
			MaxRooms:           row.MaxRooms,
			DiscountPercentage: row.DiscountPercentage,
		})
	}

	return tiers, nil
}
