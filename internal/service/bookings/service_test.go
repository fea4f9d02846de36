package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	bookingRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/booking"
	policyRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/policy"
	"github.com/pkamnoy/PVB-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return b, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == filter.RoomID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !b.CanBeCancelled() {
		return bookingRepo.ErrCannotCancel
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	b.Status = status
	return nil
}

type fakePolicyRepo struct {
	policies map[int64]*domain.CancellationPolicy
}

func (f *fakePolicyRepo) GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error) {
	p, ok := f.policies[id]
	if !ok {
		return nil, policyRepo.ErrPolicyNotFound
	}
	return p, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBooking(id, userID int64, policyID *int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		UserID:     userID,
		RoomID:     101,
		Stay:       domain.DateRange{Start: day(2026, time.June, 20), End: day(2026, time.June, 23)},
		Guests:     2,
		PolicyID:   policyID,
		TotalPrice: 10000,
		Status:     domain.StatusConfirmed,
	}
}

func flexiblePolicy() *domain.CancellationPolicy {
	p := &domain.CancellationPolicy{
		ID:   7,
		Name: "flexible",
		Rules: []domain.PolicyRule{
			{DaysBeforeCheckIn: 14, RefundPercentage: 100},
			{DaysBeforeCheckIn: 7, RefundPercentage: 50},
			{DaysBeforeCheckIn: 0, RefundPercentage: 0},
		},
	}
	p.SortRules()
	return p
}

func newTestService(repo *fakeBookingRepo, policies *fakePolicyRepo, now time.Time) *Service {
	return NewService(repo, policies, fixedClock{now: now}, noopLogger{})
}

func TestGetByID_OwnerOnly(t *testing.T) {
	policyID := int64(7)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, &policyID),
	}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 1))

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-06-20", resp.CheckIn)
	assert.Equal(t, "2026-06-23", resp.CheckOut)
	assert.Equal(t, 3, resp.Nights)

	_, err = svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 500, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_WithRefund(t *testing.T) {
	policyID := int64(7)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, &policyID),
	}}
	policies := &fakePolicyRepo{policies: map[int64]*domain.CancellationPolicy{
		7: flexiblePolicy(),
	}}
	// отмена за 10 дней до заезда - возврат 50%
	svc := newTestService(repo, policies, day(2026, time.June, 10))

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "change of plans",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByGuest), resp.Status)
	require.NotNil(t, resp.Refund)
	assert.Equal(t, 10, resp.Refund.DaysUntilCheckIn)
	assert.Equal(t, 7, resp.Refund.AppliedRuleDays)
	assert.Equal(t, 5000.0, resp.Refund.FinalRefund)

	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByGuest, repo.cancelledStatus)
	assert.Equal(t, "change of plans", repo.cancelledReason)
}

func TestCancel_NotOwner(t *testing.T) {
	policyID := int64(7)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, &policyID),
	}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 10))

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_AlreadyCheckedIn(t *testing.T) {
	b := testBooking(1, 42, nil)
	b.Status = domain.StatusCheckedIn
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: b}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 21))

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NoPolicy_NoRefundBlock(t *testing.T) {
	// без привязанной политики отмена проходит, но расчет возврата не отдается
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, nil),
	}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 10))

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})
	require.NoError(t, err)
	assert.Nil(t, resp.Refund)
	assert.Equal(t, int64(1), repo.cancelledID)
}

func TestPreviewRefund(t *testing.T) {
	policyID := int64(7)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, &policyID),
	}}
	policies := &fakePolicyRepo{policies: map[int64]*domain.CancellationPolicy{
		7: flexiblePolicy(),
	}}
	svc := newTestService(repo, policies, day(2026, time.June, 1))

	resp, err := svc.PreviewRefund(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 19, resp.DaysUntilCheckIn)
	assert.Equal(t, 14, resp.AppliedRuleDays)
	assert.Equal(t, 10000.0, resp.FinalRefund)

	// предпросмотр не меняет бронирование
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestPreviewRefund_NoPolicy(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, nil),
	}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 1))

	_, err := svc.PreviewRefund(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 1))

	bad := "teleported"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPolicy(t *testing.T) {
	policies := &fakePolicyRepo{policies: map[int64]*domain.CancellationPolicy{
		7: flexiblePolicy(),
	}}
	svc := newTestService(&fakeBookingRepo{}, policies, day(2026, time.June, 1))

	resp, err := svc.GetPolicy(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "flexible", resp.Name)
	require.Len(t, resp.Rules, 3)
	// правила отдаются по убыванию порога
	assert.Equal(t, 14, resp.Rules[0].DaysBeforeCheckIn)
	assert.Equal(t, 0, resp.Rules[2].DaysBeforeCheckIn)

	_, err = svc.GetPolicy(context.Background(), 500)
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: testBooking(1, 42, nil),
	}}
	svc := newTestService(repo, &fakePolicyRepo{}, day(2026, time.June, 20))

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, "checked_in"))
	assert.Equal(t, domain.StatusCheckedIn, repo.bookings[1].Status)

	err := svc.UpdateStatus(context.Background(), 1, "vanished")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateStatus(context.Background(), 500, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
