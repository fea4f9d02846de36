package quote_group_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
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
	tiers []domain.DiscountTier
}

func (f *fakeRulesService) ListActiveRules(ctx context.Context, asOf time.Time) ([]domain.PricingRule, error) {
	return f.rules, nil
}

func (f *fakeRulesService) ListDiscountTiers(ctx context.Context) ([]domain.DiscountTier, error) {
	return f.tiers, nil
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

func newTestUseCase(props *fakePropertyClient, rules *fakeRulesService) *UseCase {
	uc := NewUseCase(props, rules, noopLogger{})
	uc.timeProvider = fixedClock{now: day(2026, time.May, 1)}
	return uc
}

func catalog() *fakePropertyClient {
	return &fakePropertyClient{rooms: map[int64]*propertyservice.Room{
		101: {ID: 101, Name: "Garden Villa", BasePrice: 1000, IsActive: true},
		102: {ID: 102, Name: "Pool Villa", BasePrice: 2000, IsActive: true},
		103: {ID: 103, Name: "Closed Villa", BasePrice: 1500, IsActive: false},
	}}
}

func TestExecute_NoDiscountTier(t *testing.T) {
	uc := newTestUseCase(catalog(), &fakeRulesService{})

	// 2 номера по 1000 и 1 по 2000 на 2 ночи при пустых тирах:
	// subtotal 8000, налог 7% = 560, итог 8560, депозит 30% = 2568
	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 12),
		Rooms: []RoomRequest{
			{RoomID: 101, Quantity: 2},
			{RoomID: 102, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, 3, resp.TotalRooms)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 8000.0, resp.Subtotal)
	assert.Nil(t, resp.AppliedTier)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	assert.Equal(t, 8000.0, resp.TaxableAmount)
	assert.InDelta(t, 560.0, resp.TaxAmount, 1e-9)
	assert.InDelta(t, 8560.0, resp.TotalAmount, 1e-9)
	assert.InDelta(t, 2568.0, resp.DepositAmount, 1e-9)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "Garden Villa", resp.Rooms[0].RoomName)
	assert.Equal(t, 4000.0, resp.Rooms[0].Subtotal)
	assert.Equal(t, "Pool Villa", resp.Rooms[1].RoomName)
	assert.Equal(t, 4000.0, resp.Rooms[1].Subtotal)
}

func TestExecute_TierApplied(t *testing.T) {
	max := 9
	rules := &fakeRulesService{tiers: []domain.DiscountTier{
		{ID: 1, Name: "small group", MinRooms: 5, MaxRooms: &max, DiscountPercentage: 10},
		{ID: 2, Name: "large group", MinRooms: 10, DiscountPercentage: 15},
	}}
	uc := newTestUseCase(catalog(), rules)

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 11),
		Rooms: []RoomRequest{
			{RoomID: 101, Quantity: 4},
			{RoomID: 102, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 6 номеров попадают в тир 5-9
	require.NotNil(t, resp.AppliedTier)
	assert.Equal(t, "small group", resp.AppliedTier.Name)
	assert.Equal(t, 8000.0, resp.Subtotal)
	assert.Equal(t, 800.0, resp.DiscountAmount)
	assert.Equal(t, 7200.0, resp.TaxableAmount)
	assert.InDelta(t, 504.0, resp.TaxAmount, 1e-9)
	assert.InDelta(t, 7704.0, resp.TotalAmount, 1e-9)
}

func TestExecute_PricingRulesPerPosition(t *testing.T) {
	rules := &fakeRulesService{rules: []domain.PricingRule{
		{
			ID:       1,
			Scope:    domain.RoomScope{102},
			Dates:    domain.DateRange{Start: day(2026, time.June, 1), End: day(2026, time.July, 1)},
			Strategy: domain.StrategyMultiplier,
			Value:    1.5,
			Source:   domain.SourceDemand,
		},
	}}
	uc := newTestUseCase(catalog(), rules)

	resp, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 11),
		Rooms: []RoomRequest{
			{RoomID: 101, Quantity: 1},
			{RoomID: 102, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// правило со scope={102} поднимает только Pool Villa
	assert.Equal(t, 1000.0, resp.Rooms[0].Subtotal)
	assert.Equal(t, 3000.0, resp.Rooms[1].Subtotal)
	assert.Equal(t, 4000.0, resp.Subtotal)
}

func TestExecute_RoomErrors(t *testing.T) {
	uc := newTestUseCase(catalog(), &fakeRulesService{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 12),
		Rooms:    []RoomRequest{{RoomID: 500, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 12),
		Rooms:    []RoomRequest{{RoomID: 103, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(catalog(), &fakeRulesService{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"no rooms", &Request{CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 12)}},
		{"zero quantity", &Request{
			CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 12),
			Rooms: []RoomRequest{{RoomID: 101, Quantity: 0}},
		}},
		{"duplicate room", &Request{
			CheckIn: day(2026, time.June, 10), CheckOut: day(2026, time.June, 12),
			Rooms: []RoomRequest{{RoomID: 101, Quantity: 1}, {RoomID: 101, Quantity: 2}},
		}},
		{"inverted dates", &Request{
			CheckIn: day(2026, time.June, 12), CheckOut: day(2026, time.June, 10),
			Rooms: []RoomRequest{{RoomID: 101, Quantity: 1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
