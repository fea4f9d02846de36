package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	bookingRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/booking"
	policyRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/policy"
	"github.com/pkamnoy/PVB-BookingService/internal/pricing"
	"github.com/pkamnoy/PVB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	policyRepo   PolicyRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		policyRepo:   policyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwnedBooking(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookings получает бронирования номера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований.
// Маршрут внутренний (календарь занятости для службы размещения),
// проверка прав выполняется на уровне API gateway
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetRoomBookings: fetching bookings for room=%d", req.RoomID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomBookings: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: successfully fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// PreviewRefund рассчитывает возврат при отмене, не отменяя бронирование
// Расчет идет от полной стоимости проживания по политике, привязанной
// к бронированию при создании
func (s *Service) PreviewRefund(ctx context.Context, bookingID int64, userID int64) (*models.RefundResponse, error) {
	s.logger.Info("PreviewRefund: calculating refund for booking id=%d, user=%d", bookingID, userID)

	booking, err := s.getOwnedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("PreviewRefund: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	breakdown, err := s.calculateRefund(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info("PreviewRefund: booking id=%d, days=%d, refund=%.2f",
		bookingID, breakdown.DaysUntilCheckIn, breakdown.FinalRefund)
	return models.FromDomainRefund(breakdown), nil
}

// Cancel отменяет бронирование и возвращает расчет возврата
// Пользователь может отменить только своё бронирование (cancelled_by_guest)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getOwnedBooking(ctx, bookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// Считаем возврат до отмены: после смены статуса бронирование
	// уже не подлежит расчету
	var refund *models.RefundResponse
	if booking.PolicyID != nil {
		breakdown, err := s.calculateRefund(ctx, booking)
		if err != nil {
			return nil, err
		}
		refund = models.FromDomainRefund(breakdown)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, domain.StatusCancelledByGuest, req.CancellationReason); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d already past cancellable state", bookingID)
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return &models.CancelBookingResponse{
		BookingID: bookingID,
		Status:    string(domain.StatusCancelledByGuest),
		Refund:    refund,
	}, nil
}

// UpdateStatus обновляет статус бронирования
// Внутренний маршрут службы размещения: заезд, выезд, неявка
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, status)

	newStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// GetPolicy получает политику отмены по ID
// Публичное чтение: гость смотрит условия отмены до бронирования
func (s *Service) GetPolicy(ctx context.Context, policyID int64) (*models.PolicyResponse, error) {
	s.logger.Info("GetPolicy: fetching cancellation policy id=%d", policyID)

	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("GetPolicy: policy id=%d not found", policyID)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("GetPolicy: repository error for policy id=%d: %v", policyID, err)
		return nil, fmt.Errorf("%w: GetPolicy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// Вспомогательные методы

// getOwnedBooking получает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) getOwnedBooking(ctx context.Context, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getOwnedBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getOwnedBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwnedBooking - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("getOwnedBooking: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// calculateRefund загружает политику бронирования и считает возврат
// Бронирование без политики отмены возврату по запросу не подлежит:
// молчаливый дефолт в финансовом расчете недопустим
func (s *Service) calculateRefund(ctx context.Context, booking *domain.Booking) (*domain.RefundBreakdown, error) {
	if booking.PolicyID == nil {
		s.logger.Warn("calculateRefund: booking id=%d has no cancellation policy", booking.ID)
		return nil, ErrPolicyNotFound
	}

	policy, err := s.policyRepo.GetByID(ctx, *booking.PolicyID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("calculateRefund: policy id=%d not found for booking id=%d", *booking.PolicyID, booking.ID)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("calculateRefund: failed to load policy id=%d: %v", *booking.PolicyID, err)
		return nil, fmt.Errorf("%w: calculateRefund - failed to load policy: %v", ErrInternal, err)
	}

	breakdown, err := pricing.CalculateRefund(booking.TotalPrice, booking.Stay.Start, policy, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("calculateRefund: calculation failed for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: calculateRefund - calculation failed: %v", ErrInternal, err)
	}

	return breakdown, nil
}
