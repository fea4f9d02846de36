package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	propertyClient "github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
	"github.com/pkamnoy/PVB-BookingService/pkg/types"
)

// UseCase use case проверки доступности номера
type UseCase struct {
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	rulesService   RulesService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	rulesService RulesService,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		rulesService:   rulesService,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет проверку доступности номера на период
// Ночь занята активным бронированием или закрыта ограничением -
// ответ перечисляет каждую такую ночь с причиной
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, checkIn=%s, checkOut=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	stay, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что номер существует и открыт для продажи
	if _, err := uc.propertyClient.GetActiveRoom(ctx, req.RoomID); err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrRoomNotFound):
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, propertyClient.ErrRoomInactive):
			uc.logger.Warn("CheckAvailability: room id=%d is inactive", req.RoomID)
			return nil, ErrRoomInactive
		default:
			uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
	}

	// 3. Занятые интервалы номера
	intervals, err := uc.bookingRepo.ListOccupiedIntervals(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list occupied intervals for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to list occupied intervals: %v", ErrInternal, err)
	}

	// 4. Действующие ограничения доступности
	restrictions, err := uc.rulesService.ListRestrictions(ctx, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list restrictions: %v", err)
		return nil, fmt.Errorf("%w: failed to list restrictions: %v", ErrInternal, err)
	}

	// 5. Проверка ночь за ночью
	result, err := pricing.CheckAvailability(req.RoomID, stay, intervals, restrictions)
	if err != nil {
		uc.logger.Error("CheckAvailability: evaluation failed for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: room=%d, available=%t, blocked nights=%d",
		req.RoomID, result.Available, len(result.UnavailableDates))

	return buildResponse(req.RoomID, stay, result), nil
}

// buildResponse собирает ответ из результата проверки
func buildResponse(roomID int64, stay domain.DateRange, result *domain.AvailabilityResult) *Response {
	resp := &Response{
		RoomID:           roomID,
		CheckIn:          types.NewDateString(stay.Start),
		CheckOut:         types.NewDateString(stay.End),
		Nights:           stay.Nights(),
		Available:        result.Available,
		UnavailableDates: make([]types.DateString, 0, len(result.UnavailableDates)),
		Reasons:          result.Reasons,
		StayViolation:    result.StayViolation,
	}

	for _, date := range result.UnavailableDates {
		resp.UnavailableDates = append(resp.UnavailableDates, types.NewDateString(date))
	}

	return resp
}

// validateRequest валидирует входные данные и собирает период проживания
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.RoomID <= 0 {
		return domain.DateRange{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
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
