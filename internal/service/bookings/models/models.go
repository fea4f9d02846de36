package models

import (
	"errors"
	"time"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetRoomBookingsRequest запрос на получение бронирований номера
type GetRoomBookingsRequest struct {
	RoomID          int64      `json:"roomId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomBookingsRequest) ToDomainFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // "2026-12-24"
	CheckOut string `json:"checkOut"` // "2026-12-27"
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
	PolicyID *int64 `json:"policyId,omitempty"`
	Status   string `json:"status"`

	// Денормализованный снимок цен на момент бронирования
	NightlyRate   float64 `json:"nightlyRate"`
	TotalPrice    float64 `json:"totalPrice"`
	DepositAmount float64 `json:"depositAmount"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RefundResponse детализированный расчет возврата
// Каждая стадия расчета отдается клиенту: финансовую цифру нужно уметь объяснить
type RefundResponse struct {
	BookingAmount    float64 `json:"bookingAmount"`
	DaysUntilCheckIn int     `json:"daysUntilCheckIn"`
	AppliedRuleDays  int     `json:"appliedRuleDays"`
	RefundPercentage float64 `json:"refundPercentage"`
	RefundableAmount float64 `json:"refundableAmount"`
	FixedDeduction   float64 `json:"fixedDeduction"`
	PercentDeduction float64 `json:"percentDeduction"`
	ProcessingFee    float64 `json:"processingFee"`
	FinalRefund      float64 `json:"finalRefund"`
}

// CancelBookingResponse результат отмены бронирования
type CancelBookingResponse struct {
	BookingID int64           `json:"bookingId"`
	Status    string          `json:"status"`
	Refund    *RefundResponse `json:"refund,omitempty"`
}

// PolicyRuleResponse один порог политики отмены
type PolicyRuleResponse struct {
	DaysBeforeCheckIn   int     `json:"daysBeforeCheckIn"`
	RefundPercentage    float64 `json:"refundPercentage"`
	DeductionAmount     float64 `json:"deductionAmount"`
	DeductionPercentage float64 `json:"deductionPercentage"`
}

// PolicyResponse публичное представление политики отмены
type PolicyResponse struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	ProcessingFee float64              `json:"processingFee"`
	FeeExempt     bool                 `json:"feeExempt"`
	Rules         []PolicyRuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		CheckIn:            b.Stay.Start.Format(domain.DateFormat),
		CheckOut:           b.Stay.End.Format(domain.DateFormat),
		Nights:             b.Stay.Nights(),
		Guests:             b.Guests,
		PolicyID:           b.PolicyID,
		Status:             string(b.Status),
		NightlyRate:        b.NightlyRate,
		TotalPrice:         b.TotalPrice,
		DepositAmount:      b.DepositAmount,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainRefund конвертирует расчет возврата в DTO
func FromDomainRefund(b *domain.RefundBreakdown) *RefundResponse {
	if b == nil {
		return nil
	}

	return &RefundResponse{
		BookingAmount:    b.BookingAmount,
		DaysUntilCheckIn: b.DaysUntilCheckIn,
		AppliedRuleDays:  b.AppliedRuleDays,
		RefundPercentage: b.RefundPercentage,
		RefundableAmount: b.RefundableAmount,
		FixedDeduction:   b.FixedDeduction,
		PercentDeduction: b.PercentDeduction,
		ProcessingFee:    b.ProcessingFee,
		FinalRefund:      b.FinalRefund,
	}
}

// FromDomainPolicy конвертирует политику отмены в публичное DTO
func FromDomainPolicy(p *domain.CancellationPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		ID:            p.ID,
		Name:          p.Name,
		ProcessingFee: p.ProcessingFee,
		FeeExempt:     p.FeeExempt,
		Rules:         make([]PolicyRuleResponse, len(p.Rules)),
	}

	for i, rule := range p.Rules {
		resp.Rules[i] = PolicyRuleResponse{
			DaysBeforeCheckIn:   rule.DaysBeforeCheckIn,
			RefundPercentage:    rule.RefundPercentage,
			DeductionAmount:     rule.DeductionAmount,
			DeductionPercentage: rule.DeductionPercentage,
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelledByGuest,
		domain.StatusCancelledByProperty,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
