package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/pkg/ptr"
)

type fakePropertyClient struct {
	rooms map[int64]*propertyservice.Room
}

func (f *fakePropertyClient) GetActiveRoom(ctx context.Context, roomID int64) (*propertyservice.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, propertyservice.ErrRoomNotFound
	}
	if !room.IsActive {
		return nil, propertyservice.ErrRoomInactive
	}
	return room, nil
}

type fakeRulesService struct {
	rules []domain.PricingRule
	err   error
}

func (f *fakeRulesService) ListActiveRules(ctx context.Context, asOf time.Time) ([]domain.PricingRule, error) {
	return f.rules, f.err
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

func newTestUseCase(props *fakePropertyClient, rules *fakeRulesService, now time.Time) *UseCase {
	uc := NewUseCase(props, rules, noopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func standardRoom() *fakePropertyClient {
	return &fakePropertyClient{rooms: map[int64]*propertyservice.Room{
		101: {ID: 101, Name: "Garden Villa", RoomType: "villa", BasePrice: 1000, MaxOccupancy: 4, IsActive: true},
		102: {ID: 102, Name: "Closed Villa", RoomType: "villa", BasePrice: 1000, IsActive: false},
	}}
}

func TestExecute_HolidaySurcharge(t *testing.T) {
	rules := &fakeRulesService{rules: []domain.PricingRule{
		{
			ID:       1,
			Dates:    domain.DateRange{Start: day(2026, time.December, 20), End: day(2026, time.December, 31)},
			Priority: 5,
			Strategy: domain.StrategyPercentage,
			Value:    20,
			Source:   domain.SourceSeasonal,
		},
		{
			ID:       2,
			Dates:    domain.DateRange{Start: day(2026, time.December, 25), End: day(2026, time.December, 26)},
			Priority: 10,
			Strategy: domain.StrategyFixedAmount,
			Value:    1000,
			Source:   domain.SourceHoliday,
		},
	}}
	uc := newTestUseCase(standardRoom(), rules, day(2026, time.November, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2026, time.December, 24),
		CheckOut: day(2026, time.December, 27),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, "Garden Villa", resp.RoomName)
	assert.Equal(t, 3, resp.Nights)
	require.Len(t, resp.NightlyPrices, 3)

	// 24 и 26 декабря: 1000 * 1.2, 25 декабря: 1000 * 1.2 + 1000
	assert.Equal(t, 1200.0, resp.NightlyPrices[0].Price)
	assert.Equal(t, 2200.0, resp.NightlyPrices[1].Price)
	assert.Equal(t, 1200.0, resp.NightlyPrices[2].Price)
	assert.Equal(t, 4600.0, resp.TotalPrice)
}

func TestExecute_NoRules(t *testing.T) {
	uc := newTestUseCase(standardRoom(), &fakeRulesService{}, day(2026, time.November, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2026, time.December, 1),
		CheckOut: day(2026, time.December, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, resp.TotalPrice)
	assert.Empty(t, resp.AppliedRules)
}

func TestExecute_BasePriceOverride(t *testing.T) {
	uc := newTestUseCase(standardRoom(), &fakeRulesService{}, day(2026, time.November, 1))

	override := 2500.0
	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    101,
		CheckIn:   day(2026, time.December, 1),
		CheckOut:  day(2026, time.December, 3),
		BasePrice: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, resp.BasePrice)
	assert.Equal(t, 5000.0, resp.TotalPrice)
}

func TestExecute_RoomErrors(t *testing.T) {
	uc := newTestUseCase(standardRoom(), &fakeRulesService{}, day(2026, time.November, 1))

	req := &Request{RoomID: 500, CheckIn: day(2026, time.December, 1), CheckOut: day(2026, time.December, 3)}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req.RoomID = 102
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecute_MinStayEnforced(t *testing.T) {
	rules := &fakeRulesService{rules: []domain.PricingRule{
		{
			ID:       1,
			Dates:    domain.DateRange{Start: day(2026, time.December, 20), End: day(2027, time.January, 10)},
			Strategy: domain.StrategyPercentage,
			Value:    10,
			MinStay:  3,
			Source:   domain.SourceSeasonal,
		},
	}}
	uc := newTestUseCase(standardRoom(), rules, day(2026, time.November, 1))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2026, time.December, 24),
		CheckOut: day(2026, time.December, 26),
	})
	assert.ErrorIs(t, err, ErrMinStayNotMet)
}

func TestExecute_AdvanceBookingEnforced(t *testing.T) {
	rules := &fakeRulesService{rules: []domain.PricingRule{
		{
			ID:                 1,
			Dates:              domain.DateRange{Start: day(2026, time.December, 20), End: day(2027, time.January, 10)},
			Strategy:           domain.StrategyPercentage,
			Value:              10,
			AdvanceBookingDays: 30,
			Source:             domain.SourceSeasonal,
		},
	}}
	// до заезда всего 4 дня при требовании 30
	uc := newTestUseCase(standardRoom(), rules, day(2026, time.December, 20))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2026, time.December, 24),
		CheckOut: day(2026, time.December, 28),
	})
	assert.ErrorIs(t, err, ErrAdvanceBookingRequired)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(standardRoom(), &fakeRulesService{}, day(2026, time.November, 1))

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero room id", &Request{CheckIn: day(2026, time.December, 1), CheckOut: day(2026, time.December, 3)}},
		{"missing dates", &Request{RoomID: 101}},
		{"check-out before check-in", &Request{RoomID: 101, CheckIn: day(2026, time.December, 3), CheckOut: day(2026, time.December, 1)}},
		{"zero nights", &Request{RoomID: 101, CheckIn: day(2026, time.December, 1), CheckOut: day(2026, time.December, 1)}},
		{"negative base price", &Request{RoomID: 101, CheckIn: day(2026, time.December, 1), CheckOut: day(2026, time.December, 3), BasePrice: ptr.Ptr(-100.0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
