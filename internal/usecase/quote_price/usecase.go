package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	propertyClient "github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
)

// UseCase use case расчета стоимости проживания
type UseCase struct {
	propertyClient PropertyServiceClient
	rulesService   RulesService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyClient PropertyServiceClient,
	rulesService RulesService,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyClient: propertyClient,
		rulesService:   rulesService,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет расчет стоимости проживания
// Базовая цена берется из каталога номеров, правила всех источников
// применяются к каждой ночи отдельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: room=%d, checkIn=%s, checkOut=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	stay, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем номер из каталога
	room, err := uc.propertyClient.GetActiveRoom(ctx, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrRoomNotFound):
			uc.logger.Warn("QuotePrice: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, propertyClient.ErrRoomInactive):
			uc.logger.Warn("QuotePrice: room id=%d is inactive", req.RoomID)
			return nil, ErrRoomInactive
		default:
			uc.logger.Error("QuotePrice: failed to get room id=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
	}

	// 3. Собираем активные правила всех источников
	rules, err := uc.rulesService.ListActiveRules(ctx, now)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	// 4. Рассчитываем стоимость по ночам
	// Явно переданная basePrice имеет приоритет над ценой из каталога
	basePrice := room.BasePrice
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}

	quote, err := pricing.ResolveStay(req.RoomID, basePrice, stay, rules)
	if err != nil {
		uc.logger.Error("QuotePrice: price resolution failed for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: price resolution failed: %v", ErrInternal, err)
	}

	// 5. Проверяем ограничения правил периода
	if err := validateQuoteRestrictions(quote, stay, now); err != nil {
		uc.logger.Warn("QuotePrice: restrictions check failed for room id=%d: %v", req.RoomID, err)
		return nil, err
	}

	uc.logger.Info("QuotePrice: room=%d, nights=%d, total=%.2f, rules applied=%d",
		req.RoomID, quote.Nights, quote.TotalPrice, len(quote.AppliedRules))

	return buildResponse(uuid.NewString(), room, stay, quote), nil
}

// buildResponse собирает ответ с полной детализацией расчета
func buildResponse(quoteID string, room *propertyClient.Room, stay domain.DateRange, quote *domain.PriceQuote) *Response {
	resp := &Response{
		QuoteID:            quoteID,
		RoomID:             room.ID,
		RoomName:           room.Name,
		CheckIn:            stay.Start.Format(domain.DateFormat),
		CheckOut:           stay.End.Format(domain.DateFormat),
		Nights:             quote.Nights,
		BasePrice:          quote.BasePrice,
		NightlyPrices:      make([]NightPrice, 0, len(quote.NightlyPrices)),
		AppliedRules:       make([]AppliedRule, 0, len(quote.AppliedRules)),
		FinalPricePerNight: quote.FinalPricePerNight,
		TotalPrice:         quote.TotalPrice,
		MinStay:            quote.MinStay,
		AdvanceBookingDays: quote.AdvanceBookingDays,
	}

	for _, night := range quote.NightlyPrices {
		resp.NightlyPrices = append(resp.NightlyPrices, NightPrice{
			Date:  night.Date.Format(domain.DateFormat),
			Price: night.Price,
		})
	}

	for _, applied := range quote.AppliedRules {
		resp.AppliedRules = append(resp.AppliedRules, AppliedRule{
			RuleID:      applied.RuleID,
			Source:      string(applied.Source),
			Strategy:    string(applied.Strategy),
			Value:       applied.Value,
			Date:        applied.Date.Format(domain.DateFormat),
			PriceBefore: applied.PriceBefore,
			PriceAfter:  applied.PriceAfter,
		})
	}

	return resp
}
