package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	policyRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/policy"
	propertyClient "github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	policyRepo     PolicyRepository
	propertyClient PropertyServiceClient
	rulesService   RulesService
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	propertyClient PropertyServiceClient,
	rulesService RulesService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		policyRepo:     policyRepo,
		propertyClient: propertyClient,
		rulesService:   rulesService,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// с блокировкой занятых интервалов номера: две параллельные попытки занять
// последнюю свободную ночь не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.UserID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	stay, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата заезда не в прошлом
	if err := validateCheckInDate(stay, now); err != nil {
		uc.logger.Warn("CreateBooking: check-in date %s is in the past", stay.Start.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Номер из каталога
	room, err := uc.propertyClient.GetActiveRoom(ctx, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, propertyClient.ErrRoomNotFound):
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, propertyClient.ErrRoomInactive):
			uc.logger.Warn("CreateBooking: room id=%d is inactive", req.RoomID)
			return nil, ErrRoomInactive
		default:
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
	}

	// 4. Вместимость номера
	if req.Guests > room.MaxOccupancy {
		uc.logger.Warn("CreateBooking: %d guests exceed room id=%d capacity %d",
			req.Guests, req.RoomID, room.MaxOccupancy)
		return nil, fmt.Errorf("%w: room fits at most %d guests", ErrTooManyGuests, room.MaxOccupancy)
	}

	// 5. Политика отмены, если указана
	if req.PolicyID != nil {
		if _, err := uc.policyRepo.GetByID(ctx, *req.PolicyID); err != nil {
			if errors.Is(err, policyRepo.ErrPolicyNotFound) {
				uc.logger.Warn("CreateBooking: policy id=%d not found", *req.PolicyID)
				return nil, ErrPolicyNotFound
			}
			uc.logger.Error("CreateBooking: failed to get policy id=%d: %v", *req.PolicyID, err)
			return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}
	}

	// 6. Правила и ограничения
	rules, err := uc.rulesService.ListActiveRules(ctx, now)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing rules: %v", ErrInternal, err)
	}

	restrictions, err := uc.rulesService.ListRestrictions(ctx, now)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list restrictions: %v", err)
		return nil, fmt.Errorf("%w: failed to list restrictions: %v", ErrInternal, err)
	}

	// 7. Стоимость проживания фиксируется на момент бронирования
	quote, err := pricing.ResolveStay(req.RoomID, room.BasePrice, stay, rules)
	if err != nil {
		uc.logger.Error("CreateBooking: price resolution failed for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: price resolution failed: %v", ErrInternal, err)
	}

	if err := validateQuoteRestrictions(quote, stay, now); err != nil {
		uc.logger.Warn("CreateBooking: restrictions check failed for room id=%d: %v", req.RoomID, err)
		return nil, err
	}

	var result *domain.Booking

	// 8. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Занятые интервалы с блокировкой FOR UPDATE
		intervals, err := uc.bookingRepo.ListOccupiedIntervals(txCtx, req.RoomID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list occupied intervals: %v", err)
			return fmt.Errorf("%w: failed to list occupied intervals: %v", ErrInternal, err)
		}

		// 8.2. Проверка ночь за ночью
		availability, err := pricing.CheckAvailability(req.RoomID, stay, intervals, restrictions)
		if err != nil {
			uc.logger.Error("CreateBooking: availability evaluation failed: %v", err)
			return fmt.Errorf("%w: availability evaluation failed: %v", ErrInternal, err)
		}

		if !availability.Available {
			uc.logger.Warn("CreateBooking: room id=%d not available, blocked nights=%d, stay violation=%q",
				req.RoomID, len(availability.UnavailableDates), availability.StayViolation)
			if availability.StayViolation != "" {
				return fmt.Errorf("%w: %s", ErrRoomNotAvailable, availability.StayViolation)
			}
			return ErrRoomNotAvailable
		}

		// 8.3. Создаем бронирование с зафиксированным расчетом
		booking := &domain.Booking{
			UserID:        req.UserID,
			RoomID:        req.RoomID,
			Stay:          stay,
			Guests:        req.Guests,
			PolicyID:      req.PolicyID,
			NightlyRate:   quote.FinalPricePerNight,
			TotalPrice:    quote.TotalPrice,
			DepositAmount: quote.TotalPrice * domain.DepositRatePercent / 100,
			Notes:         req.Notes,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		RoomID:        result.RoomID,
		CheckIn:       result.Stay.Start.Format(domain.DateFormat),
		CheckOut:      result.Stay.End.Format(domain.DateFormat),
		Nights:        result.Stay.Nights(),
		Guests:        result.Guests,
		PolicyID:      result.PolicyID,
		Status:        string(result.Status),
		NightlyRate:   result.NightlyRate,
		TotalPrice:    result.TotalPrice,
		DepositAmount: result.DepositAmount,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
