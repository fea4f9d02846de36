package quote_group_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	propertyClient "github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
)

// UseCase use case группового расчета стоимости
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

// Execute выполняет групповой расчет стоимости
// Каждая позиция считается по тем же правилам, что и одиночный расчет,
// затем по суммарному количеству номеров выбирается единственный тир скидки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteGroupPrice: positions=%d, checkIn=%s, checkOut=%s",
		len(req.Rooms), req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	stay, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("QuoteGroupPrice: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Собираем базовые цены номеров из каталога
	groupRooms := make([]domain.GroupRoom, 0, len(req.Rooms))
	roomNames := make(map[int64]string, len(req.Rooms))

	for _, position := range req.Rooms {
		room, err := uc.propertyClient.GetActiveRoom(ctx, position.RoomID)
		if err != nil {
			switch {
			case errors.Is(err, propertyClient.ErrRoomNotFound):
				uc.logger.Warn("QuoteGroupPrice: room id=%d not found", position.RoomID)
				return nil, fmt.Errorf("%w: room %d", ErrRoomNotFound, position.RoomID)
			case errors.Is(err, propertyClient.ErrRoomInactive):
				uc.logger.Warn("QuoteGroupPrice: room id=%d is inactive", position.RoomID)
				return nil, fmt.Errorf("%w: room %d", ErrRoomInactive, position.RoomID)
			default:
				uc.logger.Error("QuoteGroupPrice: failed to get room id=%d: %v", position.RoomID, err)
				return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
			}
		}

		roomNames[room.ID] = room.Name
		groupRooms = append(groupRooms, domain.GroupRoom{
			RoomID:    position.RoomID,
			Quantity:  position.Quantity,
			BasePrice: room.BasePrice,
		})
	}

	// 3. Правила ценообразования и тиры скидок
	rules, err := uc.rulesService.ListActiveRules(ctx, now)
	if err != nil {
		uc.logger.Error("QuoteGroupPrice: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	tiers, err := uc.rulesService.ListDiscountTiers(ctx)
	if err != nil {
		uc.logger.Error("QuoteGroupPrice: failed to list discount tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list discount tiers: %v", ErrInternal, err)
	}

	// 4. Групповой расчет
	quote, err := pricing.CalculateGroupPrice(groupRooms, stay, tiers, rules)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("QuoteGroupPrice: calculation rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("QuoteGroupPrice: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: calculation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteGroupPrice: rooms=%d, subtotal=%.2f, discount=%.2f, total=%.2f",
		quote.TotalRooms, quote.Subtotal, quote.DiscountAmount, quote.TotalAmount)

	return buildResponse(uuid.NewString(), stay, quote, roomNames), nil
}

// buildResponse собирает ответ с полной детализацией группового расчета
func buildResponse(quoteID string, stay domain.DateRange, quote *domain.GroupQuote, roomNames map[int64]string) *Response {
	resp := &Response{
		QuoteID:        quoteID,
		CheckIn:        stay.Start.Format(domain.DateFormat),
		CheckOut:       stay.End.Format(domain.DateFormat),
		Nights:         quote.Nights,
		TotalRooms:     quote.TotalRooms,
		Rooms:          make([]RoomSubtotal, 0, len(quote.Rooms)),
		Subtotal:       quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		TaxableAmount:  quote.TaxableAmount,
		TaxAmount:      quote.TaxAmount,
		TotalAmount:    quote.TotalAmount,
		DepositAmount:  quote.DepositAmount,
	}

	for _, room := range quote.Rooms {
		resp.Rooms = append(resp.Rooms, RoomSubtotal{
			RoomID:        room.RoomID,
			RoomName:      roomNames[room.RoomID],
			Quantity:      room.Quantity,
			PricePerNight: room.PricePerNight,
			Subtotal:      room.Subtotal,
		})
	}

	if quote.AppliedTier != nil {
		resp.AppliedTier = &AppliedTier{
			ID:                 quote.AppliedTier.ID,
			Name:               quote.AppliedTier.Name,
			MinRooms:           quote.AppliedTier.MinRooms,
			MaxRooms:           quote.AppliedTier.MaxRooms,
			DiscountPercentage: quote.AppliedTier.DiscountPercentage,
		}
	}

	return resp
}

// validateRequest валидирует входные данные и собирает период проживания
func validateRequest(req *Request) (domain.DateRange, error) {
	if len(req.Rooms) == 0 {
		return domain.DateRange{}, fmt.Errorf("%w: at least one room position is required", ErrInvalidInput)
	}

	if len(req.Rooms) > domain.MaxGroupRooms {
		return domain.DateRange{}, fmt.Errorf("%w: too many room positions, max %d", ErrInvalidInput, domain.MaxGroupRooms)
	}

	seen := make(map[int64]struct{}, len(req.Rooms))
	for _, position := range req.Rooms {
		if position.RoomID <= 0 {
			return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
		}
		if position.Quantity <= 0 {
			return domain.DateRange{}, fmt.Errorf("%w: room %d quantity must be positive", ErrInvalidInput, position.RoomID)
		}
		if _, ok := seen[position.RoomID]; ok {
			return domain.DateRange{}, fmt.Errorf("%w: room %d is listed twice", ErrInvalidInput, position.RoomID)
		}
		seen[position.RoomID] = struct{}{}
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
